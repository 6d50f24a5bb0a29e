package hash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloats(t *testing.T) {
	r := []float64{1, 2, 3}
	phi := []float64{0.5, 0.25, 0.125}

	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, Floats(r, phi), Floats(r, phi))
	})

	t.Run("order sensitive", func(t *testing.T) {
		require.NotEqual(t, Floats(r, phi), Floats(phi, r))
	})

	t.Run("slice boundaries matter", func(t *testing.T) {
		require.NotEqual(t, Floats([]float64{1, 2}, []float64{3}), Floats([]float64{1}, []float64{2, 3}))
	})

	t.Run("distinguishes signed zero", func(t *testing.T) {
		require.NotEqual(t, Floats([]float64{0}), Floats([]float64{math.Copysign(0, -1)}))
	})

	t.Run("single value change", func(t *testing.T) {
		changed := []float64{0.5, 0.25, 0.1250000001}
		require.NotEqual(t, Floats(r, phi), Floats(r, changed))
	})
}
