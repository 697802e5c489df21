package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/agenda"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	s, err := storage.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestFamily(t *testing.T, s *storage.Storage) *domain.Family {
	t.Helper()
	f := &domain.Family{Name: "Testfamilie"}
	require.NoError(t, s.CreateFamily(f))
	return f
}

func ptr[T any](v T) *T {
	return &v
}

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func TestAgendaServiceListUpcoming(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)
	svc := NewAgendaService(s, agenda.FixedClock{T: testNow})

	require.NoError(t, s.CreateEvent(&domain.Event{
		FamilyID: f.ID, Title: "Schulfest",
		Date: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, s.CreateEvent(&domain.Event{
		FamilyID: f.ID, Title: "vergangen",
		Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, s.CreateTodo(&domain.Todo{
		FamilyID: f.ID, Task: "Geschenk kaufen",
		DueDate: ptr(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)),
	}))
	require.NoError(t, s.CreateContact(&domain.Contact{
		FamilyID: f.ID, FirstName: "Opa",
		Birthdate: ptr(time.Date(1952, 11, 3, 0, 0, 0, 0, time.UTC)),
	}))

	items, err := svc.List(f.ID, agenda.ModeUpcoming)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Geschenk kaufen", items[0].Title)
	assert.Equal(t, "Schulfest", items[1].Title)
	assert.Equal(t, "Opa", items[2].Title)

	all, err := svc.List(f.ID, agenda.ModeAll)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestAgendaServiceScopedToFamily(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)
	other := &domain.Family{Name: "Nachbarn"}
	require.NoError(t, s.CreateFamily(other))
	svc := NewAgendaService(s, agenda.FixedClock{T: testNow})

	require.NoError(t, s.CreateEvent(&domain.Event{
		FamilyID: other.ID, Title: "fremder Termin",
		Date: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
	}))

	items, err := svc.List(f.ID, agenda.ModeAll)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAgendaServiceMonthGrid(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s)
	svc := NewAgendaService(s, agenda.FixedClock{T: testNow})

	cells, err := svc.MonthGrid(f.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, cells, agenda.MonthGridSize)
	assert.Equal(t, time.Monday, cells[0].Date.Weekday())
}

func TestFormatDayDigest(t *testing.T) {
	day := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC) // a Wednesday
	contact := &domain.Contact{FirstName: "Tim", Birthdate: ptr(time.Date(2018, 6, 18, 0, 0, 0, 0, time.UTC))}
	items := []agenda.Item{
		{Kind: agenda.KindEvent, Title: "Elternabend", Event: &domain.Event{TimeOfDay: "19:30"}},
		{Kind: agenda.KindTodo, Title: "Kuchen backen"},
		{Kind: agenda.KindBirthday, Title: "Tim", Date: day, Contact: contact},
		{Kind: agenda.KindShopping, Title: "Butter", Description: "Edeka"},
	}

	text := FormatDayDigest(day, items)
	assert.Contains(t, text, "Mittwoch, 18.06.2025")
	assert.Contains(t, text, "🗓 19:30 — Elternabend")
	assert.Contains(t, text, "✅ Kuchen backen")
	assert.Contains(t, text, "🎂 Tim wird 7")
	assert.Contains(t, text, "🛒 Angebot: Butter bei Edeka")
}

func TestFormatDayDigestEmpty(t *testing.T) {
	day := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	text := FormatDayDigest(day, nil)
	assert.Contains(t, text, "Keine Einträge heute")
}
