// Package profile describes the sampled bubble profile consumed by the
// estimators in package estimate.
//
// A Profile is read-only input. Nothing in phiinf modifies the slices it
// carries, and estimators never retain them after a call returns.
package profile

import (
	"fmt"
	"math"

	"github.com/arloliu/phiinf/errs"
	"github.com/arloliu/phiinf/internal/hash"
)

// MinLen is the smallest number of samples an estimable profile may hold:
// four tail points, the boundary point and a point inside the midpoint.
const MinLen = 6

// Profile is a radial field configuration approaching the metastable vacuum
// at its outer boundary R[len(R)-1].
type Profile struct {
	// R holds strictly increasing radii.
	R []float64
	// Phi holds the field value at each radius.
	Phi []float64
	// Dim is the spacetime dimension.
	Dim int
	// PhiMetaMin is the field value at the metastable vacuum.
	PhiMetaMin float64
	// MassMeta is the mass at the metastable vacuum. It may be zero.
	MassMeta float64
	// Massless marks profiles whose mass term vanishes by construction.
	Massless bool
	// V is the scalar potential.
	V func(phi float64) float64
}

// Validate reports whether p satisfies the preconditions of the estimators.
//
// Returns:
//   - error: nil, or one of the errs profile sentinels wrapped with detail
func (p *Profile) Validate() error {
	if len(p.R) != len(p.Phi) {
		return fmt.Errorf("%w: %d radii vs %d field values", errs.ErrMismatchedLength, len(p.R), len(p.Phi))
	}
	if len(p.R) < MinLen {
		return fmt.Errorf("%w: %d samples, need at least %d", errs.ErrProfileTooShort, len(p.R), MinLen)
	}
	if p.Dim <= 2 {
		return fmt.Errorf("%w: dimension %d, need > 2", errs.ErrInvalidDimension, p.Dim)
	}
	if p.V == nil {
		return errs.ErrNilPotential
	}
	if !isFinite(p.PhiMetaMin) || !isFinite(p.MassMeta) {
		return fmt.Errorf("%w: vacuum parameters", errs.ErrNonFiniteSample)
	}

	for i := range p.R {
		if !isFinite(p.R[i]) || !isFinite(p.Phi[i]) {
			return fmt.Errorf("%w: index %d", errs.ErrNonFiniteSample, i)
		}
		if i > 0 && p.R[i] <= p.R[i-1] {
			return fmt.Errorf("%w: R[%d]=%g after R[%d]=%g", errs.ErrRadiiNotIncreasing, i, p.R[i], i-1, p.R[i-1])
		}
	}

	return nil
}

// Len returns the number of samples.
func (p *Profile) Len() int {
	return len(p.R)
}

// Last returns the index of the outer boundary sample.
func (p *Profile) Last() int {
	return len(p.R) - 1
}

// IsMassless reports whether the massless specialization applies.
func (p *Profile) IsMassless() bool {
	return p.Massless || p.MassMeta == 0
}

// Fingerprint returns a 64-bit identity of the sampled radii and field values.
func (p *Profile) Fingerprint() uint64 {
	return hash.Floats(p.R, p.Phi)
}

// NearestIndex returns the index of the element of values closest to target.
// Ties resolve to the lowest index. It returns -1 for an empty slice.
func NearestIndex(values []float64, target float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, v := range values {
		d := math.Abs(v - target)
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
