package domain

import "time"

type Note struct {
	ID        int64
	FamilyID  int64
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
