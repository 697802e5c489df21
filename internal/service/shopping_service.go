package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/grocery"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

type ShoppingService struct {
	storage  *storage.Storage
	notifier Notifier
}

func NewShoppingService(s *storage.Storage, n Notifier) *ShoppingService {
	return &ShoppingService{storage: s, notifier: n}
}

func (s *ShoppingService) Create(familyID int64, name, quantity string, unit domain.Unit, store string, dealDate *time.Time, createdBy int64) (*domain.ShoppingItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("shopping item name cannot be empty")
	}

	item := &domain.ShoppingItem{
		FamilyID:  familyID,
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		Store:     store,
		DealDate:  dealDate,
		CreatedBy: createdBy,
	}
	if err := s.storage.CreateShoppingItem(item); err != nil {
		return nil, fmt.Errorf("create shopping item: %w", err)
	}

	alertFamily(s.storage, s.notifier, familyID,
		fmt.Sprintf("🛒 Neu auf der Einkaufsliste: %s %s %s", item.Quantity, item.Unit, item.Name))

	return item, nil
}

func (s *ShoppingService) Get(id int64) (*domain.ShoppingItem, error) {
	return s.storage.GetShoppingItem(id)
}

func (s *ShoppingService) List(familyID int64) ([]*domain.ShoppingItem, error) {
	return s.storage.ListShoppingItems(familyID)
}

func (s *ShoppingService) Update(item *domain.ShoppingItem) error {
	existing, err := s.storage.GetShoppingItem(item.ID)
	if err != nil {
		return fmt.Errorf("get shopping item: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("shopping item not found")
	}
	if existing.FamilyID != item.FamilyID {
		return fmt.Errorf("access denied")
	}
	if err := s.storage.UpdateShoppingItem(item); err != nil {
		return fmt.Errorf("update shopping item: %w", err)
	}
	return nil
}

func (s *ShoppingService) SetChecked(id, familyID int64, checked bool) error {
	item, err := s.storage.GetShoppingItem(id)
	if err != nil {
		return fmt.Errorf("get shopping item: %w", err)
	}
	if item == nil {
		return fmt.Errorf("shopping item not found")
	}
	if item.FamilyID != familyID {
		return fmt.Errorf("access denied")
	}
	return s.storage.SetShoppingItemChecked(id, checked)
}

func (s *ShoppingService) Delete(id, familyID int64) error {
	item, err := s.storage.GetShoppingItem(id)
	if err != nil {
		return fmt.Errorf("get shopping item: %w", err)
	}
	if item == nil {
		return fmt.Errorf("shopping item not found")
	}
	if item.FamilyID != familyID {
		return fmt.Errorf("access denied")
	}
	return s.storage.DeleteShoppingItem(id)
}

// ApplyMergePlan persists a merge plan produced by the grocery package.
// Updates run before inserts so an insert failure leaves the list in a
// usable state.
func (s *ShoppingService) ApplyMergePlan(familyID int64, plan grocery.Plan, createdBy int64) error {
	for _, u := range plan.Updates {
		item, err := s.storage.GetShoppingItem(u.ItemID)
		if err != nil {
			return fmt.Errorf("get shopping item %d: %w", u.ItemID, err)
		}
		if item == nil || item.FamilyID != familyID {
			return fmt.Errorf("shopping item %d not found", u.ItemID)
		}
		if err := s.storage.UpdateShoppingItemQuantity(u.ItemID, u.Quantity); err != nil {
			return fmt.Errorf("update quantity of item %d: %w", u.ItemID, err)
		}
	}
	for _, in := range plan.Inserts {
		item := &domain.ShoppingItem{
			FamilyID:  familyID,
			Name:      in.Name,
			Quantity:  in.Quantity,
			Unit:      in.Unit,
			CreatedBy: createdBy,
		}
		if err := s.storage.CreateShoppingItem(item); err != nil {
			return fmt.Errorf("insert shopping item %q: %w", in.Name, err)
		}
	}
	return nil
}

// DealsOn returns unchecked items whose deal date falls on the given day.
func (s *ShoppingService) DealsOn(familyID int64, day time.Time) ([]*domain.ShoppingItem, error) {
	items, err := s.storage.ListShoppingItems(familyID)
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}
	var deals []*domain.ShoppingItem
	for _, it := range items {
		if it.Checked || it.DealDate == nil {
			continue
		}
		d := *it.DealDate
		if d.Year() == day.Year() && d.Month() == day.Month() && d.Day() == day.Day() {
			deals = append(deals, it)
		}
	}
	return deals, nil
}
