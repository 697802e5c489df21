package grocery

import "github.com/muellermarian/FamilyPlanner-sub000/internal/domain"

// ScaleIngredients returns a copy of the ingredients with quantities
// multiplied by desiredServings/baseServings. A missing or zero base
// means scaling is not applicable and quantities pass through with
// factor 1. Order and length are preserved; names and units are
// untouched.
func ScaleIngredients(ingredients []domain.RecipeIngredient, baseServings, desiredServings int) []domain.RecipeIngredient {
	factor := 1.0
	if baseServings > 0 && desiredServings > 0 {
		factor = float64(desiredServings) / float64(baseServings)
	}

	out := make([]domain.RecipeIngredient, len(ingredients))
	for i, ing := range ingredients {
		scaled := ing
		scaled.Quantity = FormatQuantity(ParseQuantity(ing.Quantity) * factor)
		out[i] = scaled
	}
	return out
}
