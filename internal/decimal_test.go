package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalRound2(t *testing.T) {
	t.Run("quantizes to two decimal places with half-up rounding", func(t *testing.T) {
		cases := []struct {
			in   string
			want string
		}{
			{"100", "100.00"},
			{"2.004", "2.00"},
			{"2.005", "2.01"},
			{"2.675", "2.68"},
			{"-2.005", "-2.01"},
			{"0", "0.00"},
			{"0.1", "0.10"},
		}

		for _, tc := range cases {
			d, err := NewDecimal(tc.in)
			require.NoError(t, err)

			assert.Equal(t, tc.want, d.Round2().Text(), "rounding %s", tc.in)
		}
	})
}

func TestDecimalArithmetic(t *testing.T) {
	t.Run("subtracts exactly", func(t *testing.T) {
		a, err := NewDecimal("150")
		require.NoError(t, err)
		b, err := NewDecimal("50.25")
		require.NoError(t, err)

		assert.Equal(t, "99.75", a.Sub(b).String())
	})

	t.Run("avoids binary float artifacts", func(t *testing.T) {
		a, err := NewDecimal("0.1")
		require.NoError(t, err)
		b, err := NewDecimal("0.2")
		require.NoError(t, err)

		sum := a.Add(b)
		expected, err := NewDecimal("0.3")
		require.NoError(t, err)
		assert.Zero(t, sum.Cmp(expected))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := NewDecimal("12..5")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid decimal")
	})
}
