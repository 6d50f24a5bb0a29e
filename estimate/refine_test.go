package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func linearSample(intercept, slope, curvature, bcError float64) TailFitSample {
	s := TailFitSample{
		Indices:   [TailPoints]int{40, 30, 20, 10},
		Deviation: [TailPoints]float64{0.1, 0.2, 0.3, 0.4},
	}
	for k, d := range s.Deviation {
		s.LogPhiInf[k] = intercept + slope*d + curvature*d*d
		s.BCError[k] = bcError
	}

	return s
}

func TestRefineTailSample(t *testing.T) {
	t.Run("exact linear data", func(t *testing.T) {
		res := RefineTailSample(linearSample(0.9, 0.5, 0, 0))
		require.Equal(t, MethodRegression, res.Method)
		require.InDelta(t, 0.9, res.Value, 1e-12)
		require.Less(t, res.Error, 1e-10)
	})

	t.Run("constant data", func(t *testing.T) {
		res := RefineTailSample(linearSample(-1.25, 0, 0, 1e-9))
		require.InDelta(t, -1.25, res.Value, 1e-12)
		require.Less(t, res.Error, 1e-8)
	})

	t.Run("curvature widens the bound", func(t *testing.T) {
		res := RefineTailSample(linearSample(0.9, 0.5, 2, 1e-6))
		require.InDelta(t, 0.842649, res.Value, 1e-5)
		require.InDelta(t, 0.0618547, res.Error, 1e-5)
		require.GreaterOrEqual(t, res.Error, math.Abs(res.Value-0.9)-1e-9)
	})

	t.Run("non-finite samples fail", func(t *testing.T) {
		s := linearSample(0.9, 0.5, 0, 1e-6)
		s.LogPhiInf[2] = math.NaN()
		res := RefineTailSample(s)
		require.False(t, res.Usable())
	})
}

func TestMainMethod(t *testing.T) {
	t.Run("dense exact tail", func(t *testing.T) {
		res, sample, stats := MainMethod(denseProfile(), DefaultTail, DefaultTolerance)
		require.NotNil(t, sample)
		require.Equal(t, MethodRegression, res.Method)
		require.InDelta(t, testLogPhiInf, res.Value, 1e-10)
		require.Less(t, res.Error, 1e-10)
		require.Positive(t, stats.Restarts)
	})

	t.Run("coarse grid finds no sample", func(t *testing.T) {
		res, sample, _ := MainMethod(coarseProfile(), DefaultTail, DefaultTolerance)
		require.Nil(t, sample)
		require.True(t, math.IsNaN(res.Value))
		require.True(t, math.IsInf(res.Error, 1))
	})

	t.Run("corrected tail", func(t *testing.T) {
		res, sample, _ := MainMethod(correctedProfile(), DefaultTail, DefaultTolerance)
		require.NotNil(t, sample)
		require.InDelta(t, testLogPhiInf, res.Value, 1e-4)
		require.Less(t, res.Error, 1e-4)
	})
}
