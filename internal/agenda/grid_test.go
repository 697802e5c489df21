package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

func TestBuildMonthGridShape(t *testing.T) {
	tests := []struct {
		name      string
		anchor    time.Time
		wantFirst time.Time
		inMonth   int
	}{
		{
			// June 1st, 2025 is a Sunday; grid starts the Monday before.
			name:      "june 2025",
			anchor:    date(2025, 6, 10),
			wantFirst: date(2025, 5, 26),
			inMonth:   30,
		},
		{
			// September 1st, 2025 is a Monday itself.
			name:      "september 2025 starts on monday",
			anchor:    date(2025, 9, 1),
			wantFirst: date(2025, 9, 1),
			inMonth:   30,
		},
		{
			name:      "february leap year",
			anchor:    date(2024, 2, 15),
			wantFirst: date(2024, 1, 29),
			inMonth:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := BuildMonthGrid(tt.anchor, nil, nil, nil)
			require.Len(t, cells, MonthGridSize)
			assert.Equal(t, tt.wantFirst, cells[0].Date)
			assert.Equal(t, time.Monday, cells[0].Date.Weekday())

			count := 0
			for i, c := range cells {
				if i > 0 {
					assert.Equal(t, cells[i-1].Date.AddDate(0, 0, 1), c.Date, "cells are consecutive days")
				}
				if c.InMonth {
					count++
				}
			}
			assert.Equal(t, tt.inMonth, count)
		})
	}
}

func TestBuildMonthGridMatchesItems(t *testing.T) {
	events := []*domain.Event{
		{ID: 1, Title: "Schulfest", Date: date(2025, 6, 20)},
		{ID: 2, Title: "anderer Monat", Date: date(2025, 8, 20)},
	}
	todos := []*domain.Todo{
		{ID: 3, Task: "Geschenk kaufen", DueDate: ptr(datetime(2025, 6, 20, 10, 0))},
		{ID: 4, Task: "ohne Termin"},
	}
	contacts := []*domain.Contact{
		{ID: 5, FirstName: "Oma", Birthdate: ptr(date(1955, 6, 20))},
	}

	cells := BuildMonthGrid(date(2025, 6, 1), events, todos, contacts)

	var cell *DayCell
	for i := range cells {
		if sameDay(cells[i].Date, date(2025, 6, 20)) {
			cell = &cells[i]
			break
		}
	}
	require.NotNil(t, cell)
	require.Len(t, cell.Items, 3)
	assert.Equal(t, KindEvent, cell.Items[0].Kind)
	assert.Equal(t, KindTodo, cell.Items[1].Kind)
	assert.Equal(t, KindBirthday, cell.Items[2].Kind)

	total := 0
	for _, c := range cells {
		total += len(c.Items)
	}
	assert.Equal(t, 3, total, "off-month event and undated todo are absent")
}

func TestBuildMonthGridBirthdayIgnoresYear(t *testing.T) {
	contacts := []*domain.Contact{
		{ID: 1, FirstName: "Opa", Birthdate: ptr(date(1950, 3, 8))},
	}

	for _, year := range []int{2024, 2025, 2030} {
		cells := BuildMonthGrid(date(year, 3, 1), nil, nil, contacts)
		found := false
		for _, c := range cells {
			for _, it := range c.Items {
				if it.Kind == KindBirthday && sameDay(c.Date, date(year, 3, 8)) {
					found = true
				}
			}
		}
		assert.True(t, found, "birthday must appear in %d", year)
	}
}

func TestBuildWeekGrid(t *testing.T) {
	src := Sources{
		Events: []*domain.Event{
			{ID: 1, Title: "Training", Date: date(2025, 6, 11)},
		},
		ShoppingItems: []*domain.ShoppingItem{
			{ID: 2, Name: "Butter", DealDate: ptr(date(2025, 6, 12))},
		},
	}

	cells := BuildWeekGrid(date(2025, 6, 9), src, now)
	require.Len(t, cells, 7)
	assert.Equal(t, date(2025, 6, 9), cells[0].Date)
	assert.Equal(t, date(2025, 6, 15), cells[6].Date)

	require.Len(t, cells[2].Items, 1)
	assert.Equal(t, "Training", cells[2].Items[0].Title)
	require.Len(t, cells[3].Items, 1)
	assert.Equal(t, KindShopping, cells[3].Items[0].Kind, "deal-dated items appear in the week view")
}
