package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

type ContactService struct {
	storage *storage.Storage
}

func NewContactService(s *storage.Storage) *ContactService {
	return &ContactService{storage: s}
}

func (s *ContactService) Create(familyID int64, firstName, lastName string, birthdate *time.Time, contactFamilyID *int64) (*domain.Contact, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, fmt.Errorf("contact first name cannot be empty")
	}

	contact := &domain.Contact{
		FamilyID:        familyID,
		FirstName:       firstName,
		LastName:        strings.TrimSpace(lastName),
		Birthdate:       birthdate,
		ContactFamilyID: contactFamilyID,
	}
	if err := s.storage.CreateContact(contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

func (s *ContactService) Get(id int64) (*domain.Contact, error) {
	return s.storage.GetContact(id)
}

func (s *ContactService) List(familyID int64) ([]*domain.Contact, error) {
	return s.storage.ListContacts(familyID)
}

func (s *ContactService) Update(contact *domain.Contact) error {
	existing, err := s.storage.GetContact(contact.ID)
	if err != nil {
		return fmt.Errorf("get contact: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("contact not found")
	}
	if existing.FamilyID != contact.FamilyID {
		return fmt.Errorf("access denied")
	}
	if err := s.storage.UpdateContact(contact); err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

func (s *ContactService) Delete(id, familyID int64) error {
	contact, err := s.storage.GetContact(id)
	if err != nil {
		return fmt.Errorf("get contact: %w", err)
	}
	if contact == nil {
		return fmt.Errorf("contact not found")
	}
	if contact.FamilyID != familyID {
		return fmt.Errorf("access denied")
	}
	return s.storage.DeleteContact(id)
}

func (s *ContactService) CreateContactFamily(familyID int64, name, address string) (*domain.ContactFamily, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("contact family name cannot be empty")
	}
	cf := &domain.ContactFamily{FamilyID: familyID, Name: name, Address: address}
	if err := s.storage.CreateContactFamily(cf); err != nil {
		return nil, fmt.Errorf("create contact family: %w", err)
	}
	return cf, nil
}

func (s *ContactService) ListContactFamilies(familyID int64) ([]*domain.ContactFamily, error) {
	return s.storage.ListContactFamilies(familyID)
}
