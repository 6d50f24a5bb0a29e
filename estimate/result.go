package estimate

import (
	"fmt"
	"math"
	"strings"
)

// Method identifies the estimator that produced a Result.
type Method int

const (
	// MethodNone marks a Result that no estimator produced.
	MethodNone Method = iota
	// MethodDirect is a single-point estimate from one profile sample.
	MethodDirect
	// MethodRegression is the tail-point regression with the caller's tolerance.
	MethodRegression
	// MethodRegressionRetry is the tail-point regression with the tolerance
	// derived from the geometric estimate.
	MethodRegressionRetry
	// MethodGeometric is the three-radius geometric cross-check.
	MethodGeometric
	// MethodMasslessFit is the power-law tail fit used for massless profiles.
	MethodMasslessFit
)

// methodNames maps Method to their string representations.
var methodNames = map[Method]string{
	MethodNone:            "none",
	MethodDirect:          "direct",
	MethodRegression:      "regression",
	MethodRegressionRetry: "regression-retry",
	MethodGeometric:       "geometric",
	MethodMasslessFit:     "massless-fit",
}

// String returns the string representation of the method.
func (m Method) String() string {
	if name, exists := methodNames[m]; exists {
		return name
	}

	return "unknown"
}

// Result is an estimate of log phiInf with its error bound.
//
// Error is never negative. An infinite Error means the estimator could not
// produce a usable value; Value is then NaN or an unresolved number.
type Result struct {
	// Value is the estimate of log phiInf.
	Value float64
	// Error is the absolute error bound on Value.
	Error float64
	// Method is the estimator that produced the result.
	Method Method
}

// failed returns the designed failure value of an estimator.
func failed(m Method) Result {
	return Result{Value: math.NaN(), Error: math.Inf(1), Method: m}
}

// Usable reports whether r carries a finite value with a finite error bound.
func (r Result) Usable() bool {
	return !math.IsNaN(r.Value) && !math.IsInf(r.Value, 0) &&
		!math.IsNaN(r.Error) && !math.IsInf(r.Error, 0)
}

// String returns a string representation of the result.
func (r Result) String() string {
	return fmt.Sprintf("Result{Method: %s, Value: %.6g, Error: %.3g}", r.Method, r.Value, r.Error)
}

// SelectBest returns the candidate with the smallest Error.
//
// Ties resolve to the candidate listed first, so callers list the estimates
// they prefer on equal error first. A NaN error never wins over a comparable
// one. With no candidates the failure Result is returned.
func SelectBest(candidates ...Result) Result {
	if len(candidates) == 0 {
		return failed(MethodNone)
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Error < best.Error || (math.IsNaN(best.Error) && !math.IsNaN(c.Error)) {
			best = c
		}
	}

	return best
}

// Report is the full outcome of one estimation, including every candidate
// that took part in the selection.
type Report struct {
	// Best is the selected candidate.
	Best Result
	// Candidates holds every candidate in comparison order.
	Candidates []Result
	// RetryTolerance is the tolerance of the second regression pass.
	// It is NaN for massless profiles, which have no second pass.
	RetryTolerance float64
	// Sample is the tail sample of the first regression pass, if one was selected.
	Sample *TailFitSample
}

// String returns a string representation of the report.
func (r *Report) String() string {
	parts := make([]string, len(r.Candidates))
	for i, c := range r.Candidates {
		parts[i] = c.String()
	}

	return fmt.Sprintf("Report{Best: %s, Candidates: [%s]}", r.Best, strings.Join(parts, ", "))
}
