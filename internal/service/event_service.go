package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

type EventService struct {
	storage  *storage.Storage
	notifier Notifier
}

func NewEventService(s *storage.Storage, n Notifier) *EventService {
	return &EventService{storage: s, notifier: n}
}

func (s *EventService) Create(familyID int64, title, description string, date time.Time, timeOfDay string) (*domain.Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("event title cannot be empty")
	}
	if date.IsZero() {
		return nil, fmt.Errorf("event date is required")
	}

	event := &domain.Event{
		FamilyID:    familyID,
		Title:       title,
		Description: description,
		Date:        date,
		TimeOfDay:   timeOfDay,
	}
	if err := s.storage.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	text := fmt.Sprintf("📅 Neuer Termin: %s am %s", event.Title, event.FormatDate())
	if event.TimeOfDay != "" {
		text += " um " + event.TimeOfDay
	}
	alertFamily(s.storage, s.notifier, familyID, text)

	return event, nil
}

func (s *EventService) Get(id int64) (*domain.Event, error) {
	return s.storage.GetEvent(id)
}

func (s *EventService) List(familyID int64) ([]*domain.Event, error) {
	return s.storage.ListEvents(familyID)
}

func (s *EventService) Update(event *domain.Event) error {
	existing, err := s.storage.GetEvent(event.ID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("event not found")
	}
	if existing.FamilyID != event.FamilyID {
		return fmt.Errorf("access denied")
	}
	if err := s.storage.UpdateEvent(event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (s *EventService) Delete(id, familyID int64) error {
	event, err := s.storage.GetEvent(id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return fmt.Errorf("event not found")
	}
	if event.FamilyID != familyID {
		return fmt.Errorf("access denied")
	}
	return s.storage.DeleteEvent(id)
}
