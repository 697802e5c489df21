// Package agenda merges calendar events, due todos, recurring birthdays
// and deal-dated shopping items into unified agenda views. All functions
// are pure: they read already-fetched rows and never touch storage.
package agenda

import (
	"sort"
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

// Kind tags the source record an agenda item was derived from.
type Kind string

const (
	KindEvent    Kind = "event"
	KindTodo     Kind = "todo"
	KindBirthday Kind = "birthday"
	KindShopping Kind = "shopping"
)

// Mode controls date filtering of the flat agenda list.
type Mode string

const (
	ModeUpcoming Mode = "upcoming" // drop items before today
	ModeAll      Mode = "all"
	ModeCalendar Mode = "calendar" // same as all, used by grid-backed views
)

// Item is a derived agenda entry. It has no identity of its own beyond
// (Kind, ID) and is rebuilt from source rows on every call.
type Item struct {
	Kind        Kind
	ID          int64 // id of the source row
	Title       string
	Date        time.Time  // resolved calendar date at midnight
	Due         *time.Time // original due timestamp for todos
	Description string

	// Back-reference to the originating record, one of:
	Event        *domain.Event
	Todo         *domain.Todo
	Contact      *domain.Contact
	ShoppingItem *domain.ShoppingItem
}

// TimeOfDay returns the display time for the item, empty if all-day.
func (it Item) TimeOfDay() string {
	switch {
	case it.Event != nil:
		return it.Event.TimeOfDay
	case it.Due != nil:
		if it.Due.Hour() == 0 && it.Due.Minute() == 0 {
			return ""
		}
		return it.Due.Format("15:04")
	}
	return ""
}

// Age returns the age a birthday contact turns on the resolved date,
// and 0 for every other kind.
func (it Item) Age() int {
	if it.Kind != KindBirthday || it.Contact == nil {
		return 0
	}
	return it.Contact.AgeAt(it.Date.Year())
}

// Sources bundles the four source row kinds.
type Sources struct {
	Events        []*domain.Event
	Todos         []*domain.Todo
	Contacts      []*domain.Contact
	ShoppingItems []*domain.ShoppingItem
}

// BuildList merges all four source kinds into a flat list sorted by
// resolved date, ascending. The sort is stable: rows with equal dates
// keep their input order, events before todos before birthdays before
// shopping items. In ModeUpcoming, items dated before today's midnight
// are excluded. Birthdays are projected onto now's year only; a
// birthday already passed this year does not roll over to the next.
func BuildList(src Sources, mode Mode, now time.Time) []Item {
	items := make([]Item, 0, len(src.Events)+len(src.Todos)+len(src.Contacts)+len(src.ShoppingItems))
	items = append(items, eventItems(src.Events)...)
	items = append(items, todoItems(src.Todos)...)
	items = append(items, birthdayItems(src.Contacts, now)...)
	items = append(items, shoppingItems(src.ShoppingItems)...)

	if mode == ModeUpcoming {
		today := dayStart(now)
		kept := items[:0]
		for _, it := range items {
			if !it.Date.Before(today) {
				kept = append(kept, it)
			}
		}
		items = kept
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items
}

// BuildDayAgenda returns the items of all four kinds whose resolved
// date falls on the given calendar day, regardless of past or future.
func BuildDayAgenda(day time.Time, src Sources, now time.Time) []Item {
	var out []Item
	for _, it := range BuildList(src, ModeAll, now) {
		if sameDay(it.Date, day) {
			out = append(out, it)
		}
	}
	return out
}

func eventItems(events []*domain.Event) []Item {
	var out []Item
	for _, e := range events {
		if e.Date.IsZero() {
			continue // unparsable source date, dropped from date-bounded views
		}
		out = append(out, Item{
			Kind:        KindEvent,
			ID:          e.ID,
			Title:       e.Title,
			Date:        dayStart(e.Date),
			Description: e.Description,
			Event:       e,
		})
	}
	return out
}

func todoItems(todos []*domain.Todo) []Item {
	var out []Item
	for _, t := range todos {
		if t.DueDate == nil || t.DueDate.IsZero() {
			continue // only due todos appear on the agenda
		}
		due := *t.DueDate
		out = append(out, Item{
			Kind:        KindTodo,
			ID:          t.ID,
			Title:       t.Task,
			Date:        dayStart(due),
			Due:         &due,
			Description: t.Description,
			Todo:        t,
		})
	}
	return out
}

func birthdayItems(contacts []*domain.Contact, now time.Time) []Item {
	var out []Item
	for _, c := range contacts {
		if c.Birthdate == nil || c.Birthdate.IsZero() {
			continue
		}
		out = append(out, Item{
			Kind:    KindBirthday,
			ID:      c.ID,
			Title:   c.FullName(),
			Date:    c.BirthdayThisYear(now.Year()),
			Contact: c,
		})
	}
	return out
}

func shoppingItems(items []*domain.ShoppingItem) []Item {
	var out []Item
	for _, s := range items {
		if s.DealDate == nil || s.DealDate.IsZero() {
			continue
		}
		out = append(out, Item{
			Kind:         KindShopping,
			ID:           s.ID,
			Title:        s.Name,
			Date:         dayStart(*s.DealDate),
			Description:  s.Store,
			ShoppingItem: s,
		})
	}
	return out
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
