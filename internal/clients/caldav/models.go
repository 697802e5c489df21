package caldav

import "time"

// Calendar is a remote calendar collection.
type Calendar struct {
	ID          string
	DisplayName string
}

// RemoteEvent is a VEVENT pulled from the remote calendar.
type RemoteEvent struct {
	UID         string
	Summary     string
	Description string
	Start       time.Time
	AllDay      bool
}
