package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

type fakeNotifier struct {
	chatIDs  []int64
	messages []string
}

func (f *fakeNotifier) SendMessage(chatID int64, text string) error {
	f.chatIDs = append(f.chatIDs, chatID)
	f.messages = append(f.messages, text)
	return nil
}

func TestEventCreateAlertsFamilyChat(t *testing.T) {
	s := newTestStorage(t)
	f := &domain.Family{Name: "Testfamilie", ChatID: 4711}
	require.NoError(t, s.CreateFamily(f))

	notifier := &fakeNotifier{}
	svc := NewEventService(s, notifier)

	_, err := svc.Create(f.ID, "Elternabend", "", time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "19:30")
	require.NoError(t, err)

	require.Len(t, notifier.messages, 1)
	assert.Equal(t, int64(4711), notifier.chatIDs[0])
	assert.Contains(t, notifier.messages[0], "Neuer Termin: Elternabend am 20.06.2025 um 19:30")
}

func TestAlertSkippedWithoutChat(t *testing.T) {
	s := newTestStorage(t)
	f := newTestFamily(t, s) // ChatID 0

	notifier := &fakeNotifier{}
	svc := NewTodoService(s, notifier)

	_, err := svc.Create(f.ID, "Rasen mähen", "", nil, nil, domain.PriorityNone)
	require.NoError(t, err)
	assert.Empty(t, notifier.messages)
}

func TestTodoAlertCarriesDueDateAndPriority(t *testing.T) {
	s := newTestStorage(t)
	f := &domain.Family{Name: "Testfamilie", ChatID: 99}
	require.NoError(t, s.CreateFamily(f))

	notifier := &fakeNotifier{}
	svc := NewTodoService(s, notifier)

	due := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(f.ID, "Impftermin", "", &due, nil, domain.PriorityHigh)
	require.NoError(t, err)

	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Impftermin")
	assert.Contains(t, notifier.messages[0], "‼️")
	assert.Contains(t, notifier.messages[0], "fällig 14.06.2025")
}
