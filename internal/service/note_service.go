package service

import (
	"fmt"
	"strings"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

type NoteService struct {
	storage *storage.Storage
}

func NewNoteService(s *storage.Storage) *NoteService {
	return &NoteService{storage: s}
}

func (s *NoteService) Create(familyID int64, title, body string) (*domain.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("note title cannot be empty")
	}
	note := &domain.Note{FamilyID: familyID, Title: title, Body: body}
	if err := s.storage.CreateNote(note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

func (s *NoteService) Get(id int64) (*domain.Note, error) {
	return s.storage.GetNote(id)
}

func (s *NoteService) List(familyID int64) ([]*domain.Note, error) {
	return s.storage.ListNotes(familyID)
}

func (s *NoteService) Update(note *domain.Note) error {
	existing, err := s.storage.GetNote(note.ID)
	if err != nil {
		return fmt.Errorf("get note: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("note not found")
	}
	if existing.FamilyID != note.FamilyID {
		return fmt.Errorf("access denied")
	}
	if err := s.storage.UpdateNote(note); err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (s *NoteService) Delete(id, familyID int64) error {
	note, err := s.storage.GetNote(id)
	if err != nil {
		return fmt.Errorf("get note: %w", err)
	}
	if note == nil {
		return fmt.Errorf("note not found")
	}
	if note.FamilyID != familyID {
		return fmt.Errorf("access denied")
	}
	return s.storage.DeleteNote(id)
}
