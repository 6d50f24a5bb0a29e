package estimate

import (
	"math"

	"github.com/arloliu/phiinf/internal/lsq"
	"github.com/arloliu/phiinf/profile"
)

// RefineTailSample extrapolates the direct estimates of a tail sample to
// zero deviation.
//
// A quadratic fit in the deviation, weighted by the boundary-condition errors,
// measures the curvature b. The bias |b·dev²| of neglecting it is added in
// quadrature to each point's error, and a linear fit with those absolute
// errors gives the value. The error is the larger of the linear intercept's
// standard error and its distance from the quadratic intercept.
//
// Parameters:
//   - s: A complete tail sample
//
// Returns:
//   - Result: The extrapolated estimate with MethodRegression; the failure
//     Result if either fit is singular
func RefineTailSample(s TailFitSample) Result {
	dev := s.Deviation[:]

	quad, err := lsq.Polynomial(dev, s.LogPhiInf[:], s.BCError[:], 2, false)
	if err != nil {
		return failed(MethodRegression)
	}
	quadIntercept, curvature := quad.Params[0], quad.Params[2]

	var combined [TailPoints]float64
	for k, d := range dev {
		combined[k] = math.Hypot(curvature*d*d, s.BCError[k])
	}

	lin, err := lsq.Polynomial(dev, s.LogPhiInf[:], combined[:], 1, true)
	if err != nil {
		return failed(MethodRegression)
	}
	value := lin.Params[0]
	bound := math.Max(lin.StdErr(0), math.Abs(value-quadIntercept))
	if math.IsNaN(bound) {
		return failed(MethodRegression)
	}

	return Result{Value: value, Error: bound, Method: MethodRegression}
}

// MainMethod selects a tail sample from p and refines it.
//
// Returns:
//   - Result: The refined estimate; the failure Result if no sample could be selected
//   - *TailFitSample: The sample used, nil on selection failure
//   - TailStats: Scan statistics
func MainMethod(p *profile.Profile, tail, tol float64) (Result, *TailFitSample, TailStats) {
	sample, stats, ok := SelectTailPoints(p, tail, tol)
	if !ok {
		return failed(MethodRegression), nil, stats
	}

	return RefineTailSample(sample), &sample, stats
}
