package grocery

import (
	"fmt"
	"strings"

	"github.com/muellermarian/FamilyPlanner-sub000/internal/domain"
)

// QuantityUpdate instructs the caller to set a new quantity on an
// existing shopping list row.
type QuantityUpdate struct {
	ItemID   int64
	Quantity string
}

// NewItem is the payload for a shopping list row to be inserted.
type NewItem struct {
	Name     string
	Quantity string
	Unit     domain.Unit
}

// Plan is the result of a merge: pure instructions, persistence is the
// caller's job.
type Plan struct {
	Updates []QuantityUpdate
	Inserts []NewItem
}

// Summary returns the user-facing result line, e.g. "2 neu, 1 aktualisiert".
func (p Plan) Summary() string {
	return fmt.Sprintf("%d neu, %d aktualisiert", len(p.Inserts), len(p.Updates))
}

// MergeIntoShoppingList plans how to add the incoming ingredients to an
// existing shopping list without creating duplicate rows. An ingredient
// matches an existing row when the names are equal case-insensitively
// and the units are identical; different units for the same name stay
// separate rows. Matches become update instructions with the summed
// quantity, misses become inserts. Several incoming ingredients hitting
// the same row (or the same new name+unit) accumulate into one
// instruction. All written quantities carry exactly two decimals.
func MergeIntoShoppingList(existing []*domain.ShoppingItem, incoming []domain.RecipeIngredient) Plan {
	var plan Plan

	// running totals, keyed by existing row id / new name+unit
	updateIdx := make(map[int64]int)
	updateSum := make(map[int64]float64)
	insertIdx := make(map[string]int)
	insertSum := make(map[string]float64)

	for _, ing := range incoming {
		match := findItem(existing, ing.Name, ing.Unit)
		if match != nil {
			qty := ParseQuantity(ing.Quantity)
			if i, ok := updateIdx[match.ID]; ok {
				updateSum[match.ID] += qty
				plan.Updates[i].Quantity = FormatQuantity2(updateSum[match.ID])
				continue
			}
			total := ParseQuantity(match.Quantity) + qty
			updateIdx[match.ID] = len(plan.Updates)
			updateSum[match.ID] = total
			plan.Updates = append(plan.Updates, QuantityUpdate{
				ItemID:   match.ID,
				Quantity: FormatQuantity2(total),
			})
			continue
		}

		key := strings.ToLower(ing.Name) + "\x00" + string(ing.Unit)
		qty := ParseQuantity(ing.Quantity)
		if i, ok := insertIdx[key]; ok {
			insertSum[key] += qty
			plan.Inserts[i].Quantity = FormatQuantity2(insertSum[key])
			continue
		}
		insertIdx[key] = len(plan.Inserts)
		insertSum[key] = qty
		plan.Inserts = append(plan.Inserts, NewItem{
			Name:     ing.Name,
			Quantity: FormatQuantity2(qty),
			Unit:     ing.Unit,
		})
	}

	return plan
}

func findItem(items []*domain.ShoppingItem, name string, unit domain.Unit) *domain.ShoppingItem {
	for _, it := range items {
		if it.Unit == unit && strings.EqualFold(it.Name, name) {
			return it
		}
	}
	return nil
}
