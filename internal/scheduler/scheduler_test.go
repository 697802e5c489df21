package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronSpec(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"07:30", "30 7 * * *"},
		{"0:00", "0 0 * * *"},
		{"23:59", "59 23 * * *"},
		{"9:05", "5 9 * * *"},
	}
	for _, tt := range tests {
		got, err := cronSpec(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestCronSpecRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "0730", "25:00", "12:60", "ab:cd", "-1:30"} {
		_, err := cronSpec(in)
		assert.Error(t, err, "input %q", in)
	}
}
