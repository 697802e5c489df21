package service

import (
	"context"
	"fmt"
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/clients/caldav"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

// CalendarSyncService imports events from an external household
// calendar into a family's local calendar by remote UID.
type CalendarSyncService struct {
	storage  *storage.Storage
	client   *caldav.Client
	familyID int64
	timezone *time.Location
}

func NewCalendarSyncService(s *storage.Storage, client *caldav.Client, familyID int64, tz *time.Location) *CalendarSyncService {
	if tz == nil {
		tz = time.UTC
	}
	return &CalendarSyncService{
		storage:  s,
		client:   client,
		familyID: familyID,
		timezone: tz,
	}
}

// IsConfigured returns true if the CalDAV client is usable.
func (s *CalendarSyncService) IsConfigured() bool {
	return s.client != nil && s.client.IsConfigured()
}

// SyncResult contains sync operation results.
type SyncResult struct {
	Added   int
	Updated int
	Deleted int
	Errors  []string
}

// Sync pulls the next 90 days from the remote calendar and reconciles
// them into local events. Only rows that were imported earlier (carry a
// remote UID) are ever updated or deleted; local events stay untouched.
func (s *CalendarSyncService) Sync(ctx context.Context) (*SyncResult, error) {
	if !s.IsConfigured() {
		return nil, fmt.Errorf("CalDAV not configured")
	}

	result := &SyncResult{}

	now := time.Now().In(s.timezone)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.timezone)
	to := from.AddDate(0, 3, 0)

	remoteEvents, err := s.client.GetEvents(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get remote events: %w", err)
	}

	localEvents, err := s.storage.ListImportedEvents(s.familyID)
	if err != nil {
		return nil, fmt.Errorf("list imported events: %w", err)
	}

	localByUID := make(map[string]*domain.Event)
	for _, e := range localEvents {
		localByUID[e.RemoteUID] = e
	}

	seenUIDs := make(map[string]bool)
	syncedAt := time.Now()

	for _, re := range remoteEvents {
		seenUIDs[re.UID] = true

		date, timeOfDay := splitRemoteStart(re, s.timezone)

		local, exists := localByUID[re.UID]
		if exists {
			if s.eventChanged(local, re, date, timeOfDay) {
				local.Title = re.Summary
				local.Description = re.Description
				local.Date = date
				local.TimeOfDay = timeOfDay
				local.SyncedAt = &syncedAt

				if err := s.storage.UpdateEvent(local); err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("update %s: %v", re.UID, err))
				} else {
					result.Updated++
				}
			}
			continue
		}

		event := &domain.Event{
			FamilyID:    s.familyID,
			Title:       re.Summary,
			Description: re.Description,
			Date:        date,
			TimeOfDay:   timeOfDay,
			RemoteUID:   re.UID,
			SyncedAt:    &syncedAt,
		}
		if err := s.storage.CreateEvent(event); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("create %s: %v", re.UID, err))
		} else {
			result.Added++
		}
	}

	// Remote deletions: drop imported rows the feed no longer contains,
	// but only inside the synced window.
	for uid, local := range localByUID {
		if seenUIDs[uid] {
			continue
		}
		if local.Date.Before(from) || local.Date.After(to) {
			continue
		}
		if err := s.storage.DeleteEvent(local.ID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("delete %s: %v", uid, err))
		} else {
			result.Deleted++
		}
	}

	return result, nil
}

func (s *CalendarSyncService) eventChanged(local *domain.Event, remote caldav.RemoteEvent, date time.Time, timeOfDay string) bool {
	if local.Title != remote.Summary {
		return true
	}
	if local.Description != remote.Description {
		return true
	}
	if !local.Date.Equal(date) {
		return true
	}
	if local.TimeOfDay != timeOfDay {
		return true
	}
	return false
}

// splitRemoteStart maps a remote start instant onto the planner's
// day-plus-optional-time model.
func splitRemoteStart(re caldav.RemoteEvent, tz *time.Location) (time.Time, string) {
	start := re.Start.In(tz)
	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, tz)
	if re.AllDay {
		return date, ""
	}
	return date, start.Format("15:04")
}
