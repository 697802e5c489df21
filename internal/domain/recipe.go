package domain

import "time"

type Recipe struct {
	ID           int64
	FamilyID     int64
	Name         string
	Instructions string
	Servings     int // baseline for scaling, 0 = unset
	Ingredients  []RecipeIngredient
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RecipeIngredient struct {
	ID            int64
	RecipeID      int64
	Name          string
	Quantity      string // decimal string, tolerant parse
	Unit          Unit
	AddToShopping bool
	Position      int
}

// ShoppingIngredients returns the ingredients flagged for the shopping list.
func (r *Recipe) ShoppingIngredients() []RecipeIngredient {
	var out []RecipeIngredient
	for _, ing := range r.Ingredients {
		if ing.AddToShopping {
			out = append(out, ing)
		}
	}
	return out
}
