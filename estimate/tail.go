package estimate

import (
	"math"

	"github.com/arloliu/phiinf/internal/pool"
	"github.com/arloliu/phiinf/profile"
)

const (
	// TailPoints is the size of a tail sample.
	TailPoints = 4
	// tailShrinkFactor caps the threshold at maxDeviation/tailShrinkFactor so
	// that TailPoints multiples of it fit inside the search window.
	tailShrinkFactor = 8
	// potentialNoiseFloor is the relative cancellation noise in V(phi) - V(phiMeta).
	potentialNoiseFloor = 1e-13
)

// TailFitSample is the fixed-size sample the regression refiner consumes.
//
// Points are ordered outermost first, so Indices decrease and Deviation
// strictly increases.
type TailFitSample struct {
	// Indices are the profile indices of the points.
	Indices [TailPoints]int
	// Deviation is the proportional deviation of the potential from its
	// quadratic approximation at each point.
	Deviation [TailPoints]float64
	// LogPhiInf holds the direct estimate at each point.
	LogPhiInf [TailPoints]float64
	// BCError holds the boundary-condition error of each direct estimate.
	BCError [TailPoints]float64
}

// TailStats describes how a tail sample was found.
type TailStats struct {
	// First and Last bound the initial search window, inclusive.
	First, Last int
	// Tail is the threshold after shrinking to fit the window.
	Tail float64
	// Restarts counts scans that stopped before collecting a full sample.
	Restarts int
}

// validTailPoint reports whether index i may extend a scan that has already
// passed index i+1. Any violation invalidates the rest of the scan.
//
// Parameters:
//   - i: Candidate index; i+1 must be a valid index
//   - tailMultiple: Threshold multiple the scan is currently looking for
//   - tail: Base proportional deviation threshold
//   - deltaV: |V(phi) - V(phiMeta) - quadV| per sample
//   - quadV: Quadratic approximation of the potential per sample
//   - vMeta: V(phiMeta)
func validTailPoint(i, tailMultiple int, tail float64, deltaV, quadV []float64, vMeta float64) bool {
	prev := i + 1
	if quadV[prev] == 0 || quadV[prev] >= quadV[i] {
		return false
	}
	if math.Abs(vMeta*potentialNoiseFloor/quadV[i]/tail) > 1 {
		return false
	}

	dev := deltaV[i] / quadV[i]
	prevDev := deltaV[prev] / quadV[prev]
	if !(dev > prevDev) {
		return false
	}
	if tailMultiple > 1 && dev-prevDev > tail {
		return false
	}

	return true
}

// tailScan holds the working state of one tail-point selection.
type tailScan struct {
	p      *profile.Profile
	quadV  []float64
	deltaV []float64
	vMeta  float64
	tail   float64
	tol    float64
	first  int
	last   int
}

// newTailScan fills quadV and deltaV, which must have length p.Len(), and
// computes the search window and the effective threshold.
func newTailScan(p *profile.Profile, tail, tol float64, quadV, deltaV []float64) *tailScan {
	m2 := p.MassMeta * p.MassMeta
	vMeta := p.V(p.PhiMetaMin)
	for i, phi := range p.Phi {
		d := phi - p.PhiMetaMin
		quadV[i] = 0.5 * m2 * d * d
		deltaV[i] = math.Abs(p.V(phi) - vMeta - quadV[i])
	}

	last := p.Len() - 2
	first := profile.NearestIndex(p.Phi, 0.5*(p.Phi[0]+p.Phi[last+1]))

	maxDev := math.Inf(1)
	if quadV[first] != 0 {
		maxDev = deltaV[first] / quadV[first]
	}
	if tailShrinkFactor*tail > maxDev {
		tail = maxDev / tailShrinkFactor
	}

	return &tailScan{
		p:      p,
		quadV:  quadV,
		deltaV: deltaV,
		vMeta:  vMeta,
		tail:   tail,
		tol:    tol,
		first:  first,
		last:   last,
	}
}

// scanFrom walks inward from index last. It returns the completed sample, or
// the index where the scan stopped.
func (s *tailScan) scanFrom(last int) (TailFitSample, int, bool) {
	var sample TailFitSample
	tailMultiple := 1
	for i := last; i >= s.first; i-- {
		if !validTailPoint(i, tailMultiple, s.tail, s.deltaV, s.quadV, s.vMeta) {
			return sample, i, false
		}

		dev := s.deltaV[i] / s.quadV[i]
		if !(dev > float64(tailMultiple)*s.tail) {
			continue
		}

		k := tailMultiple - 1
		sample.Indices[k] = i
		sample.Deviation[k] = dev

		// The outermost point's estimate is deferred until the sample is complete.
		if k > 0 {
			est := DirectEstimate(s.p, i)
			if est.Error > math.Abs(est.Value)*s.tol {
				return sample, i, false
			}
			sample.LogPhiInf[k], sample.BCError[k] = est.Value, est.Error
		}

		if tailMultiple == TailPoints {
			est := DirectEstimate(s.p, sample.Indices[0])
			sample.LogPhiInf[0], sample.BCError[0] = est.Value, est.Error

			return sample, i, true
		}
		tailMultiple++
	}

	return sample, s.first, false
}

// run restarts the scan one index inside each stop until a sample completes
// or the window can no longer hold TailPoints points.
func (s *tailScan) run() (TailFitSample, TailStats, bool) {
	stats := TailStats{First: s.first, Last: s.last, Tail: s.tail}
	if !(s.tail > 0) {
		return TailFitSample{}, stats, false
	}

	for last := s.last; last-(TailPoints-1) >= s.first; stats.Restarts++ {
		sample, stop, ok := s.scanFrom(last)
		if ok {
			return sample, stats, true
		}
		last = stop - 1
	}

	return TailFitSample{}, stats, false
}

// SelectTailPoints assembles a TailFitSample from the tail of p.
//
// The scan walks inward from the second-to-last sample and accepts a point
// each time the proportional deviation of the potential from its quadratic
// approximation crosses the next multiple of tail. Each accepted point after
// the first must have a boundary-condition error within tol of its estimate.
// A rejected point stops the scan, which is restarted one index further in.
//
// Parameters:
//   - p: Profile with a non-zero mass; must satisfy p.Validate()
//   - tail: Seed of the deviation threshold; shrunk if the window cannot reach it
//   - tol: Relative tolerance of the per-point fitness check; +Inf disables it
//
// Returns:
//   - TailFitSample: The sample; zero if ok is false
//   - TailStats: Window, effective threshold and restart count
//   - bool: Whether a full sample was assembled
func SelectTailPoints(p *profile.Profile, tail, tol float64) (TailFitSample, TailStats, bool) {
	quadV, releaseQuad := pool.GetFloat64Slice(p.Len())
	defer releaseQuad()
	deltaV, releaseDelta := pool.GetFloat64Slice(p.Len())
	defer releaseDelta()

	return newTailScan(p, tail, tol, quadV, deltaV).run()
}
