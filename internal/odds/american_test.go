package odds

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		american string
		want     float64
	}{
		{"Positive odds +100", "+100", 2.0},
		{"Positive odds +150", "+150", 2.5},
		{"Positive without sign", "200", 3.0},
		{"Negative odds -110", "-110", 1.909090909},
		{"Negative odds -150", "-150", 1.666666667},
		{"Negative odds -200", "-200", 1.5},
		{"Whitespace trimmed", "  +150 ", 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AmericanToDecimal(tt.american)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestAmericanToDecimalInvalid(t *testing.T) {
	tests := []struct {
		name     string
		american string
	}{
		{"zero", "0"},
		{"signed zero", "+0"},
		{"empty", ""},
		{"non-numeric", "abc"},
		{"decimal point", "1.5"},
		{"double sign", "+-150"},
		{"trailing garbage", "150x"},
		{"magnitude too large to stay above 1.0", "-9223372036854775808"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AmericanToDecimal(tt.american)
			assert.Error(t, err)
		})
	}
}

// Any valid non-zero integer must convert to a multiplier strictly above 1.0.
func TestAmericanToDecimalAlwaysAboveOne(t *testing.T) {
	for _, v := range []int{1, 99, 100, 150, 10000, -1, -99, -110, -100000} {
		got, err := AmericanToDecimal(fmt.Sprintf("%d", v))
		require.NoError(t, err)
		assert.Greater(t, got, 1.0, "odds %d", v)
		assert.False(t, math.IsInf(got, 0))
	}
}
