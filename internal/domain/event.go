package domain

import "time"

// Event is a calendar event on a concrete day, optionally at a time of day.
type Event struct {
	ID          int64
	FamilyID    int64
	Title       string
	Description string
	Date        time.Time // calendar day, midnight in family timezone
	TimeOfDay   string    // "HH:MM", empty = all day
	RemoteUID   string    // UID from CalDAV import, empty for local events
	SyncedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FormatDate returns the date in de-DE short form.
func (e *Event) FormatDate() string {
	return e.Date.Format("02.01.2006")
}

// FormatTime returns the time of day for display.
func (e *Event) FormatTime() string {
	if e.TimeOfDay == "" {
		return "ganztägig"
	}
	return e.TimeOfDay
}

// IsImported returns true if the event came from the external calendar.
func (e *Event) IsImported() bool {
	return e.RemoteUID != ""
}
