package service

import (
	"log"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

// Notifier pushes a message to a chat. Satisfied by notify.Telegram.
type Notifier interface {
	SendMessage(chatID int64, text string) error
}

// alertFamily pushes a new-item notice to the family chat. Best effort:
// a failed or unconfigured push never fails the write that triggered it.
func alertFamily(s *storage.Storage, n Notifier, familyID int64, text string) {
	if n == nil {
		return
	}
	family, err := s.GetFamily(familyID)
	if err != nil || family == nil || family.ChatID == 0 {
		return
	}
	if err := n.SendMessage(family.ChatID, text); err != nil {
		log.Printf("Error sending alert to family %d: %v", familyID, err)
	}
}

func priorityTag(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return " ‼️"
	case domain.PriorityMedium:
		return " ❗"
	default:
		return ""
	}
}
