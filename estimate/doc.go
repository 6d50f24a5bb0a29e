// Package estimate estimates log phiInf, the logarithm of the amplitude with
// which a bubble profile approaches its metastable vacuum at large radius,
// together with an error bound.
//
// # Key Features
//
//   - **Tail-Point Regression**: Selects four tail points where the potential
//     departs measurably from its quadratic approximation and extrapolates their
//     direct estimates to zero departure
//   - **Geometric Cross-Check**: An independent coarse estimate from three
//     geometrically spaced radii, used as fallback and to derive a retry tolerance
//   - **Massless Specialization**: A power-law tail fit for profiles with a
//     vanishing mass term, where the general asymptotic form is singular
//   - **Error-Based Selection**: Every estimator returns a Result; the one with
//     the smallest error wins
//
// # Usage
//
//	est, err := estimate.New(estimate.WithTolerance(1e-3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := est.Estimate(p)
//	if err != nil {
//	    log.Fatal(err) // p violates a precondition
//	}
//	if !res.Usable() {
//	    // no estimator resolved log phiInf
//	}
//	fmt.Printf("log phiInf = %.6f ± %.2g (%s)\n", res.Value, res.Error, res.Method)
//
// Report returns every candidate instead of only the selected one:
//
//	report, _ := est.Report(p)
//	for _, c := range report.Candidates {
//	    fmt.Println(c)
//	}
//
// # Failure Model
//
// Only precondition violations of the profile (see profile.Validate) are
// returned as errors. When an estimator cannot resolve log phiInf it returns a
// Result with an infinite Error, and the selection moves on to the other
// candidates. A Result with a large but finite Error is passed through; deciding
// whether it is acceptable is up to the caller.
//
// # Pipeline
//
// For a massive profile:
//
//  1. MainMethod with the configured tail and tolerance (SelectTailPoints, then
//     RefineTailSample)
//  2. Geometric with the profile mass
//  3. MainMethod again with tolerance |error/value| of the geometric estimate,
//     or with +Inf if that estimate is unusable
//  4. SelectBest over the three results in that order
//
// For a massless profile, MasslessTailFit and Geometric with zero mass are
// compared the same way.
package estimate
