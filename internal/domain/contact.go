package domain

import (
	"strings"
	"time"
)

// Contact is an address book entry. Birthdate is optional; the year is
// only used to compute the displayed age.
type Contact struct {
	ID              int64
	FamilyID        int64
	FirstName       string
	LastName        string
	Birthdate       *time.Time
	ContactFamilyID *int64
	CreatedAt       time.Time
}

func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// HasBirthday returns true if a birthdate is set.
func (c *Contact) HasBirthday() bool {
	return c.Birthdate != nil
}

// BirthdayThisYear projects the birthdate onto the given year.
// Returns the zero time if no birthdate is set.
func (c *Contact) BirthdayThisYear(year int) time.Time {
	if c.Birthdate == nil {
		return time.Time{}
	}
	return time.Date(year, c.Birthdate.Month(), c.Birthdate.Day(), 0, 0, 0, 0, c.Birthdate.Location())
}

// AgeAt returns the age turned in the given year.
func (c *Contact) AgeAt(year int) int {
	if c.Birthdate == nil {
		return 0
	}
	return year - c.Birthdate.Year()
}

// ContactFamily groups contacts into a household with a shared address.
type ContactFamily struct {
	ID        int64
	FamilyID  int64
	Name      string
	Address   string
	CreatedAt time.Time
}
