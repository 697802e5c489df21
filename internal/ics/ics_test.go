package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBuildFamilyCalendar(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	family := &domain.Family{ID: 1, Name: "Testfamilie"}
	events := []*domain.Event{
		{ID: 10, Title: "Elternabend", Date: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), TimeOfDay: "19:30"},
		{ID: 11, Title: "Brückentag", Date: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
		{ID: 12, Title: "kaputt"}, // zero date, skipped
	}
	contacts := []*domain.Contact{
		{ID: 20, FirstName: "Oma", LastName: "Müller", Birthdate: ptr(time.Date(1955, 5, 15, 0, 0, 0, 0, time.UTC))},
		{ID: 21, FirstName: "Nachbar"}, // no birthdate, skipped
	}

	cal := BuildFamilyCalendar(family, events, contacts, now)
	raw, err := Encode(cal)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "X-WR-CALNAME:Testfamilie")
	assert.Contains(t, text, "SUMMARY:Elternabend")
	assert.Contains(t, text, "DTSTART:20250620T193000Z")
	assert.Contains(t, text, "DTEND:20250620T203000Z")
	assert.Contains(t, text, "UID:event-10@familyplanner")

	// all-day event carries a date value, no time
	assert.Contains(t, text, ";VALUE=DATE:20250630")

	assert.Contains(t, text, "RRULE:FREQ=YEARLY")
	assert.Contains(t, text, "UID:birthday-20@familyplanner")
	assert.Contains(t, text, ";VALUE=DATE:20250515")

	assert.NotContains(t, text, "kaputt")
	assert.Equal(t, 3, strings.Count(text, "BEGIN:VEVENT"), "zero-date event and birthdate-less contact are skipped")
}

func TestBuildFamilyCalendarNoContacts(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	events := []*domain.Event{
		{ID: 1, Title: "Umzug", Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	cal := BuildFamilyCalendar(&domain.Family{Name: "klein"}, events, nil, now)
	raw, err := Encode(cal)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "SUMMARY:Umzug")
	assert.NotContains(t, text, "RRULE")
}
