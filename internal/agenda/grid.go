package agenda

import (
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

// MonthGridSize is the fixed cell count of the month view: 6 rows of 7.
const MonthGridSize = 42

// DayCell is one day of a calendar grid.
type DayCell struct {
	Date    time.Time
	InMonth bool // belongs to the anchor month
	Items   []Item
}

// BuildMonthGrid produces exactly 42 day cells covering the month of
// anchor. Weeks start on Monday; the first cell is the Monday on or
// before the 1st. Items are matched without any today-based filtering:
// events by exact date, todos by due day, birthdays by month and day
// regardless of year. Shopping items do not appear in the month grid.
func BuildMonthGrid(anchor time.Time, events []*domain.Event, todos []*domain.Todo, contacts []*domain.Contact) []DayCell {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	start := first.AddDate(0, 0, -mondayOffset(first.Weekday()))

	cells := make([]DayCell, MonthGridSize)
	for i := range cells {
		day := start.AddDate(0, 0, i)
		cells[i] = DayCell{
			Date:    day,
			InMonth: day.Month() == first.Month(),
			Items:   matchDay(day, events, todos, contacts),
		}
	}
	return cells
}

// BuildWeekGrid produces 7 day cells starting at weekStart, each filled
// like BuildDayAgenda (all four item kinds).
func BuildWeekGrid(weekStart time.Time, src Sources, now time.Time) []DayCell {
	start := dayStart(weekStart)
	cells := make([]DayCell, 7)
	for i := range cells {
		day := start.AddDate(0, 0, i)
		cells[i] = DayCell{
			Date:    day,
			InMonth: true,
			Items:   BuildDayAgenda(day, src, now),
		}
	}
	return cells
}

// matchDay collects grid items for one day. Birthdays match by month
// and day only, so the grid shows them in every year it renders.
func matchDay(day time.Time, events []*domain.Event, todos []*domain.Todo, contacts []*domain.Contact) []Item {
	var out []Item
	for _, it := range eventItems(events) {
		if sameDay(it.Date, day) {
			out = append(out, it)
		}
	}
	for _, it := range todoItems(todos) {
		if sameDay(it.Date, day) {
			out = append(out, it)
		}
	}
	for _, c := range contacts {
		if c.Birthdate == nil || c.Birthdate.IsZero() {
			continue
		}
		if c.Birthdate.Month() == day.Month() && c.Birthdate.Day() == day.Day() {
			out = append(out, Item{
				Kind:    KindBirthday,
				ID:      c.ID,
				Title:   c.FullName(),
				Date:    dayStart(day),
				Contact: c,
			})
		}
	}
	return out
}

// mondayOffset returns how many days wd lies after Monday (0..6).
func mondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
