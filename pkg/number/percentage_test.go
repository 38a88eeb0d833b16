package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/utilkit/pkg/number"
)

func TestPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		part      float64
		total     float64
		precision int
		want      float64
	}{
		{name: "one third", part: 1, total: 3, precision: 2, want: 33.33},
		{name: "half", part: 50, total: 100, precision: 2, want: 50},
		{name: "halves round away from zero", part: 1, total: 8, precision: 0, want: 13},
		{name: "keeps requested digits", part: 1, total: 8, precision: 1, want: 12.5},
		{name: "negative part", part: -1, total: 8, precision: 0, want: -13},
		{name: "more than total", part: 3, total: 2, precision: 2, want: 150},
		{name: "negative precision treated as zero", part: 2, total: 3, precision: -2, want: 67},
		{name: "zero part", part: 0, total: 5, precision: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := number.Percentage(tt.part, tt.total, tt.precision)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPercentage_Errors(t *testing.T) {
	t.Parallel()

	t.Run("zero total", func(t *testing.T) {
		t.Parallel()
		_, err := number.Percentage(1, 0, 2)
		assert.ErrorIs(t, err, number.ErrZeroTotal)
	})

	t.Run("non-finite input", func(t *testing.T) {
		t.Parallel()
		_, err := number.Percentage(math.NaN(), 10, 2)
		assert.ErrorIs(t, err, number.ErrNotFinite)

		_, err = number.Percentage(1, math.Inf(1), 2)
		assert.ErrorIs(t, err, number.ErrNotFinite)
	})

	t.Run("overflowing ratio", func(t *testing.T) {
		t.Parallel()
		_, err := number.Percentage(math.MaxFloat64, 0.5, 2)
		assert.ErrorIs(t, err, number.ErrNotFinite)
	})
}
