package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/agenda"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

// AgendaService loads the four source row kinds for a family and feeds
// them into the pure aggregation functions.
type AgendaService struct {
	storage *storage.Storage
	clock   agenda.Clock
}

func NewAgendaService(s *storage.Storage, clock agenda.Clock) *AgendaService {
	if clock == nil {
		clock = agenda.RealClock{}
	}
	return &AgendaService{storage: s, clock: clock}
}

func (s *AgendaService) loadSources(familyID int64) (agenda.Sources, error) {
	var src agenda.Sources
	var err error

	if src.Events, err = s.storage.ListEvents(familyID); err != nil {
		return src, fmt.Errorf("list events: %w", err)
	}
	if src.Todos, err = s.storage.ListTodos(familyID, false); err != nil {
		return src, fmt.Errorf("list todos: %w", err)
	}
	if src.Contacts, err = s.storage.ListContacts(familyID); err != nil {
		return src, fmt.Errorf("list contacts: %w", err)
	}
	if src.ShoppingItems, err = s.storage.ListShoppingItems(familyID); err != nil {
		return src, fmt.Errorf("list shopping items: %w", err)
	}
	return src, nil
}

// List returns the flat agenda for the family in the given mode.
func (s *AgendaService) List(familyID int64, mode agenda.Mode) ([]agenda.Item, error) {
	src, err := s.loadSources(familyID)
	if err != nil {
		return nil, err
	}
	return agenda.BuildList(src, mode, s.clock.Now()), nil
}

// MonthGrid returns the 42-cell grid for the month containing anchor.
func (s *AgendaService) MonthGrid(familyID int64, anchor time.Time) ([]agenda.DayCell, error) {
	src, err := s.loadSources(familyID)
	if err != nil {
		return nil, err
	}
	return agenda.BuildMonthGrid(anchor, src.Events, src.Todos, src.Contacts), nil
}

// WeekGrid returns 7 day cells starting at weekStart.
func (s *AgendaService) WeekGrid(familyID int64, weekStart time.Time) ([]agenda.DayCell, error) {
	src, err := s.loadSources(familyID)
	if err != nil {
		return nil, err
	}
	return agenda.BuildWeekGrid(weekStart, src, s.clock.Now()), nil
}

// Day returns all agenda items for one calendar day.
func (s *AgendaService) Day(familyID int64, day time.Time) ([]agenda.Item, error) {
	src, err := s.loadSources(familyID)
	if err != nil {
		return nil, err
	}
	return agenda.BuildDayAgenda(day, src, s.clock.Now()), nil
}

// FormatDayDigest renders the day's agenda as the push digest text.
func FormatDayDigest(day time.Time, items []agenda.Item) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 Agenda für %s, %s\n", germanWeekday(day.Weekday()), day.Format("02.01.2006")))

	if len(items) == 0 {
		sb.WriteString("\nKeine Einträge heute. Schönen Tag!")
		return sb.String()
	}

	for _, it := range items {
		var line string
		switch it.Kind {
		case agenda.KindEvent:
			line = "🗓 " + it.Title
			if t := it.TimeOfDay(); t != "" {
				line = "🗓 " + t + " — " + it.Title
			}
		case agenda.KindTodo:
			line = "✅ " + it.Title
			if t := it.TimeOfDay(); t != "" {
				line += " (bis " + t + ")"
			}
		case agenda.KindBirthday:
			line = fmt.Sprintf("🎂 %s wird %d", it.Title, it.Age())
		case agenda.KindShopping:
			line = "🛒 Angebot: " + it.Title
			if it.Description != "" {
				line += " bei " + it.Description
			}
		}
		sb.WriteString("• " + line + "\n")
	}
	return sb.String()
}

// germanWeekday returns the German weekday name.
func germanWeekday(wd time.Weekday) string {
	days := []string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}
	return days[wd]
}
