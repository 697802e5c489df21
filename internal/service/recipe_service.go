package service

import (
	"fmt"
	"strings"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/grocery"
	"github.com/muellermarian/FamilyPlanner-sub000/internal/storage"
)

type RecipeService struct {
	storage  *storage.Storage
	shopping *ShoppingService
}

func NewRecipeService(s *storage.Storage, shopping *ShoppingService) *RecipeService {
	return &RecipeService{storage: s, shopping: shopping}
}

func (s *RecipeService) Create(familyID int64, name, instructions string, servings int, ingredients []domain.RecipeIngredient) (*domain.Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("recipe name cannot be empty")
	}

	recipe := &domain.Recipe{
		FamilyID:     familyID,
		Name:         name,
		Instructions: instructions,
		Servings:     servings,
		Ingredients:  ingredients,
	}
	if err := s.storage.CreateRecipe(recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}

func (s *RecipeService) Get(id int64) (*domain.Recipe, error) {
	return s.storage.GetRecipe(id)
}

func (s *RecipeService) List(familyID int64) ([]*domain.Recipe, error) {
	return s.storage.ListRecipes(familyID)
}

func (s *RecipeService) Update(recipe *domain.Recipe) error {
	existing, err := s.storage.GetRecipe(recipe.ID)
	if err != nil {
		return fmt.Errorf("get recipe: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("recipe not found")
	}
	if existing.FamilyID != recipe.FamilyID {
		return fmt.Errorf("access denied")
	}
	if err := s.storage.UpdateRecipe(recipe); err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}

func (s *RecipeService) Delete(id, familyID int64) error {
	recipe, err := s.storage.GetRecipe(id)
	if err != nil {
		return fmt.Errorf("get recipe: %w", err)
	}
	if recipe == nil {
		return fmt.Errorf("recipe not found")
	}
	if recipe.FamilyID != familyID {
		return fmt.Errorf("access denied")
	}
	return s.storage.DeleteRecipe(id)
}

// Scale returns the recipe's ingredients scaled to the desired servings.
func (s *RecipeService) Scale(id, familyID int64, desiredServings int) ([]domain.RecipeIngredient, error) {
	recipe, err := s.storage.GetRecipe(id)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if recipe == nil || recipe.FamilyID != familyID {
		return nil, fmt.Errorf("recipe not found")
	}
	return grocery.ScaleIngredients(recipe.Ingredients, recipe.Servings, desiredServings), nil
}

// AddToShoppingList scales the recipe, merges the flagged ingredients
// into the family shopping list and persists the resulting plan. The
// returned plan carries the counts for the "N neu, M aktualisiert"
// summary.
func (s *RecipeService) AddToShoppingList(id, familyID int64, desiredServings int, createdBy int64) (grocery.Plan, error) {
	recipe, err := s.storage.GetRecipe(id)
	if err != nil {
		return grocery.Plan{}, fmt.Errorf("get recipe: %w", err)
	}
	if recipe == nil || recipe.FamilyID != familyID {
		return grocery.Plan{}, fmt.Errorf("recipe not found")
	}

	scaled := grocery.ScaleIngredients(recipe.ShoppingIngredients(), recipe.Servings, desiredServings)

	existing, err := s.storage.ListShoppingItems(familyID)
	if err != nil {
		return grocery.Plan{}, fmt.Errorf("list shopping items: %w", err)
	}

	plan := grocery.MergeIntoShoppingList(existing, scaled)
	if err := s.shopping.ApplyMergePlan(familyID, plan, createdBy); err != nil {
		return grocery.Plan{}, fmt.Errorf("apply merge plan: %w", err)
	}
	return plan, nil
}
