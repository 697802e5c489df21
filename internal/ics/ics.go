// Package ics renders a family's calendar as an iCalendar feed:
// events plus yearly-recurring birthday entries.
package ics

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

const prodID = "-//FamilyPlanner//Calendar//DE"

// BuildFamilyCalendar assembles the VCALENDAR for a family. Birthdays
// repeat yearly via RRULE; contacts without a birthdate are skipped.
func BuildFamilyCalendar(family *domain.Family, events []*domain.Event, contacts []*domain.Contact, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)
	cal.Props.SetText("X-WR-CALNAME", family.Name)

	for _, e := range events {
		if e.Date.IsZero() {
			continue
		}
		vevent := ical.NewEvent()
		vevent.Props.SetText(ical.PropUID, fmt.Sprintf("event-%d@familyplanner", e.ID))
		vevent.Props.SetText(ical.PropSummary, e.Title)
		if e.Description != "" {
			vevent.Props.SetText(ical.PropDescription, e.Description)
		}

		if e.TimeOfDay == "" {
			vevent.Props.SetDate(ical.PropDateTimeStart, e.Date)
		} else {
			start := withTimeOfDay(e.Date, e.TimeOfDay)
			vevent.Props.SetDateTime(ical.PropDateTimeStart, start.UTC())
			vevent.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(time.Hour).UTC())
		}
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		cal.Children = append(cal.Children, vevent.Component)
	}

	for _, c := range contacts {
		if c.Birthdate == nil || c.Birthdate.IsZero() {
			continue
		}
		vevent := ical.NewEvent()
		vevent.Props.SetText(ical.PropUID, fmt.Sprintf("birthday-%d@familyplanner", c.ID))
		vevent.Props.SetText(ical.PropSummary, "🎂 "+c.FullName())
		vevent.Props.SetDate(ical.PropDateTimeStart, c.BirthdayThisYear(now.Year()))
		vevent.Props.SetText(ical.PropRecurrenceRule, "FREQ=YEARLY")
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		cal.Children = append(cal.Children, vevent.Component)
	}

	return cal
}

// Encode serializes the calendar to its wire format.
func Encode(cal *ical.Calendar) ([]byte, error) {
	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func withTimeOfDay(day time.Time, hhmm string) time.Time {
	var h, m int
	fmt.Sscanf(hhmm, "%d:%d", &h, &m)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}
