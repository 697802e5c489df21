package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2", 2},
		{"2.5", 2.5},
		{"2,5", 2.5}, // German decimal comma
		{" 250 ", 250},
		{"0.125", 0.125},
		{"", 0},
		{"   ", 0},
		{"etwas", 0},
		{"1 Prise", 0}, // mixed text is not a number
		{"-1.5", -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuantity(tt.in))
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2", FormatQuantity(2))
	assert.Equal(t, "2.5", FormatQuantity(2.5))
	assert.Equal(t, "0.125", FormatQuantity(0.125))
	assert.Equal(t, "0", FormatQuantity(0))
}

func TestFormatQuantity2(t *testing.T) {
	assert.Equal(t, "3.00", FormatQuantity2(3))
	assert.Equal(t, "2.50", FormatQuantity2(2.5))
	assert.Equal(t, "0.33", FormatQuantity2(1.0/3))
}
