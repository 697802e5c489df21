package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datetime(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// Reference "now": June 10th, 2025, midday.
var now = datetime(2025, 6, 10, 12, 0)

func TestBuildListSortedAscending(t *testing.T) {
	src := Sources{
		Events: []*domain.Event{
			{ID: 1, Title: "Zahnarzt", Date: date(2025, 7, 2)},
			{ID: 2, Title: "Schulfest", Date: date(2025, 6, 20)},
		},
		Todos: []*domain.Todo{
			{ID: 3, Task: "Reifen wechseln", DueDate: ptr(datetime(2025, 6, 15, 9, 0))},
		},
		ShoppingItems: []*domain.ShoppingItem{
			{ID: 4, Name: "Kaffee", DealDate: ptr(date(2025, 6, 18))},
		},
	}

	items := BuildList(src, ModeAll, now)
	require.Len(t, items, 4)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].Date.Before(items[i-1].Date),
			"items must be sorted non-decreasing by resolved date")
	}
	assert.Equal(t, "Reifen wechseln", items[0].Title)
	assert.Equal(t, "Kaffee", items[1].Title)
	assert.Equal(t, "Schulfest", items[2].Title)
	assert.Equal(t, "Zahnarzt", items[3].Title)
}

func TestBuildListStableOnEqualDates(t *testing.T) {
	day := date(2025, 6, 20)
	src := Sources{
		Events: []*domain.Event{
			{ID: 1, Title: "erster", Date: day},
			{ID: 2, Title: "zweiter", Date: day},
		},
		Todos: []*domain.Todo{
			{ID: 3, Task: "dritter", DueDate: ptr(day)},
		},
	}

	items := BuildList(src, ModeAll, now)
	require.Len(t, items, 3)
	assert.Equal(t, "erster", items[0].Title)
	assert.Equal(t, "zweiter", items[1].Title)
	assert.Equal(t, "dritter", items[2].Title)
}

func TestBuildListUpcomingExcludesPast(t *testing.T) {
	src := Sources{
		Todos: []*domain.Todo{
			{ID: 1, Task: "verpasst", DueDate: ptr(date(2025, 6, 1))},
			{ID: 2, Task: "kommt noch", DueDate: ptr(date(2025, 6, 11))},
			{ID: 3, Task: "heute", DueDate: ptr(datetime(2025, 6, 10, 8, 0))},
		},
	}

	items := BuildList(src, ModeUpcoming, now)
	require.Len(t, items, 2)
	assert.Equal(t, "heute", items[0].Title)
	assert.Equal(t, "kommt noch", items[1].Title)
}

func TestBuildListAllIncludesPast(t *testing.T) {
	src := Sources{
		Todos: []*domain.Todo{
			{ID: 1, Task: "verpasst", DueDate: ptr(date(2025, 6, 1))},
		},
	}

	for _, mode := range []Mode{ModeAll, ModeCalendar} {
		items := BuildList(src, mode, now)
		assert.Len(t, items, 1, "mode %s must not filter by today", mode)
	}
}

func TestBuildListSkipsTodosWithoutDueDate(t *testing.T) {
	src := Sources{
		Todos: []*domain.Todo{
			{ID: 1, Task: "ohne Termin"},
			{ID: 2, Task: "mit Termin", DueDate: ptr(date(2025, 6, 12))},
		},
	}

	items := BuildList(src, ModeAll, now)
	require.Len(t, items, 1)
	assert.Equal(t, "mit Termin", items[0].Title)
}

func TestBuildListRetainsDueTimestamp(t *testing.T) {
	due := datetime(2025, 6, 12, 14, 30)
	src := Sources{
		Todos: []*domain.Todo{{ID: 1, Task: "Abholen", DueDate: &due}},
	}

	items := BuildList(src, ModeAll, now)
	require.Len(t, items, 1)
	assert.Equal(t, date(2025, 6, 12), items[0].Date, "resolved date is the due day")
	require.NotNil(t, items[0].Due)
	assert.Equal(t, due, *items[0].Due, "original timestamp is kept for display")
	assert.Equal(t, "14:30", items[0].TimeOfDay())
}

func TestBirthdayResolvedToCurrentYear(t *testing.T) {
	src := Sources{
		Contacts: []*domain.Contact{
			{ID: 1, FirstName: "Oma", LastName: "Müller", Birthdate: ptr(date(1980, 5, 15))},
		},
	}

	items := BuildList(src, ModeAll, now)
	require.Len(t, items, 1)
	assert.Equal(t, date(2025, 5, 15), items[0].Date)
	assert.Equal(t, 45, items[0].Age())
	assert.Equal(t, "Oma Müller", items[0].Title)
}

func TestBirthdayNoRolloverInUpcoming(t *testing.T) {
	src := Sources{
		Contacts: []*domain.Contact{
			// May 15th has passed relative to June 10th; no next-year rollover.
			{ID: 1, FirstName: "Oma", Birthdate: ptr(date(1980, 5, 15))},
			{ID: 2, FirstName: "Opa", Birthdate: ptr(date(1952, 11, 3))},
		},
	}

	items := BuildList(src, ModeUpcoming, now)
	require.Len(t, items, 1)
	assert.Equal(t, "Opa", items[0].Title)
	assert.Equal(t, date(2025, 11, 3), items[0].Date)
}

func TestBuildListEmptyInput(t *testing.T) {
	items := BuildList(Sources{}, ModeUpcoming, now)
	assert.Empty(t, items)
}

func TestBuildListDropsZeroDates(t *testing.T) {
	src := Sources{
		Events: []*domain.Event{
			{ID: 1, Title: "kaputt"}, // zero date, e.g. unparsable source value
			{ID: 2, Title: "ok", Date: date(2025, 6, 12)},
		},
	}

	items := BuildList(src, ModeAll, now)
	require.Len(t, items, 1)
	assert.Equal(t, "ok", items[0].Title)
}

func TestBuildDayAgenda(t *testing.T) {
	day := date(2025, 6, 18)
	src := Sources{
		Events: []*domain.Event{
			{ID: 1, Title: "Treffer", Date: day},
			{ID: 2, Title: "daneben", Date: date(2025, 6, 19)},
		},
		Todos: []*domain.Todo{
			{ID: 3, Task: "Treffer", DueDate: ptr(datetime(2025, 6, 18, 17, 0))},
		},
		Contacts: []*domain.Contact{
			{ID: 4, FirstName: "Tim", Birthdate: ptr(date(2018, 6, 18))},
		},
		ShoppingItems: []*domain.ShoppingItem{
			{ID: 5, Name: "Butter", DealDate: ptr(day)},
			{ID: 6, Name: "Käse", DealDate: ptr(date(2025, 6, 25))},
		},
	}

	items := BuildDayAgenda(day, src, now)
	require.Len(t, items, 4)
	for _, it := range items {
		assert.Equal(t, day, it.Date)
	}

	kinds := map[Kind]bool{}
	for _, it := range items {
		kinds[it.Kind] = true
	}
	assert.True(t, kinds[KindEvent] && kinds[KindTodo] && kinds[KindBirthday] && kinds[KindShopping],
		"all four kinds appear in the day agenda")
}

func TestBuildDayAgendaEmptyDay(t *testing.T) {
	src := Sources{
		Events: []*domain.Event{{ID: 1, Title: "woanders", Date: date(2025, 6, 1)}},
	}
	items := BuildDayAgenda(date(2025, 6, 18), src, now)
	assert.Empty(t, items)
}
