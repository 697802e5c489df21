// Package grocery implements ingredient scaling and the shopping-list
// merge planner. Quantities travel as decimal strings; parsing is
// tolerant and never fails.
package grocery

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseQuantity parses a decimal quantity string. Comma decimal
// separators are accepted (de-DE input), anything unparsable yields 0.
func ParseQuantity(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatQuantity serializes a quantity in its shortest decimal form.
func FormatQuantity(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatQuantity2 serializes a quantity with exactly two decimals, the
// form merge plans write back to the shopping list.
func FormatQuantity2(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
