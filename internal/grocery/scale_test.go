package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

func ingredients() []domain.RecipeIngredient {
	return []domain.RecipeIngredient{
		{Name: "Mehl", Quantity: "250", Unit: domain.UnitGram},
		{Name: "Milch", Quantity: "0,5", Unit: domain.UnitLiter},
		{Name: "Salz", Quantity: "", Unit: domain.UnitPinch},
	}
}

func TestScaleIngredientsSameServings(t *testing.T) {
	out := ScaleIngredients(ingredients(), 4, 4)
	require.Len(t, out, 3)
	assert.Equal(t, "250", out[0].Quantity)
	assert.Equal(t, "0.5", out[1].Quantity, "comma input is normalized on the way through")
	assert.Equal(t, "0", out[2].Quantity)
}

func TestScaleIngredientsDoubles(t *testing.T) {
	out := ScaleIngredients(ingredients(), 4, 8)
	require.Len(t, out, 3)
	assert.Equal(t, "500", out[0].Quantity)
	assert.Equal(t, "1", out[1].Quantity)
	assert.Equal(t, "Mehl", out[0].Name)
	assert.Equal(t, domain.UnitGram, out[0].Unit)
}

func TestScaleIngredientsHalves(t *testing.T) {
	out := ScaleIngredients(ingredients(), 4, 2)
	assert.Equal(t, "125", out[0].Quantity)
	assert.Equal(t, "0.25", out[1].Quantity)
}

func TestScaleIngredientsZeroBaseKeepsFactorOne(t *testing.T) {
	for _, base := range []int{0, -3} {
		out := ScaleIngredients(ingredients(), base, 8)
		assert.Equal(t, "250", out[0].Quantity, "base %d must not scale", base)
	}
}

func TestScaleIngredientsDoesNotMutateInput(t *testing.T) {
	in := ingredients()
	_ = ScaleIngredients(in, 4, 8)
	assert.Equal(t, "250", in[0].Quantity)
}

func TestScaleIngredientsEmpty(t *testing.T) {
	assert.Empty(t, ScaleIngredients(nil, 4, 8))
}
