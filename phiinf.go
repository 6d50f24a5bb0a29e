// Package phiinf estimates the asymptotic field amplitude of a bubble profile.
//
// A bubble profile interpolates between a true vacuum at its centre and a
// metastable vacuum at infinity. Far from the wall the field relaxes as
//
//	phi(r) - phiMeta ≈ phiInf · S(dim, m, r)
//
// where S is a known shape (see package asymptotic). phiinf estimates
// log phiInf from a sampled profile together with an error bound.
//
// # Basic Usage
//
//	p := &profile.Profile{
//	    R:          radii,
//	    Phi:        field,
//	    Dim:        4,
//	    PhiMetaMin: 0,
//	    MassMeta:   1,
//	    V:          potential,
//	}
//
//	res, err := phiinf.Estimate(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("log phiInf = %.6f ± %.2g\n", res.Value, res.Error)
//
// # Package Structure
//
// This package provides a convenient top-level wrapper around the estimate
// package. For the individual estimators, candidate reports and tail samples,
// use the estimate package directly.
package phiinf

import (
	"github.com/arloliu/phiinf/estimate"
	"github.com/arloliu/phiinf/profile"
)

// Estimate returns the best estimate of log phiInf for p.
//
// Parameters:
//   - p: The sampled bubble profile
//   - opts: Estimator options; defaults are tolerance 0.001 and tail 0.007
//
// Returns:
//   - estimate.Result: The selected estimate; Error is +Inf if no estimator
//     resolved log phiInf
//   - error: An invalid option or a profile precondition violation
func Estimate(p *profile.Profile, opts ...estimate.Option) (estimate.Result, error) {
	est, err := estimate.New(opts...)
	if err != nil {
		return estimate.Result{}, err
	}

	return est.Estimate(p)
}

// MustEstimate is like Estimate but panics on an invalid option or profile.
func MustEstimate(p *profile.Profile, opts ...estimate.Option) estimate.Result {
	res, err := Estimate(p, opts...)
	if err != nil {
		panic(err)
	}

	return res
}

// EstimateLogPhiInfinity returns log phiInf and its error bound for p with
// the given per-point tolerance and tail threshold seed.
func EstimateLogPhiInfinity(p *profile.Profile, tolerance, tail float64) (value, errBound float64, err error) {
	res, err := Estimate(p, estimate.WithTolerance(tolerance), estimate.WithTail(tail))
	if err != nil {
		return 0, 0, err
	}

	return res.Value, res.Error, nil
}
