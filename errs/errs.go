// Package errs defines the sentinel errors returned by phiinf.
//
// Only precondition violations are reported as errors. A numerical failure
// to produce an estimate is reported through an infinite error bound on the
// estimate itself, never through this package.
package errs

import "errors"

// Profile errors.
var (
	// ErrProfileTooShort is returned when a profile has fewer samples than the tail window needs.
	ErrProfileTooShort = errors.New("profile too short")
	// ErrMismatchedLength is returned when the radius and field arrays differ in length.
	ErrMismatchedLength = errors.New("mismatched radius and field lengths")
	// ErrRadiiNotIncreasing is returned when radii are not strictly increasing.
	ErrRadiiNotIncreasing = errors.New("radii not strictly increasing")
	// ErrInvalidDimension is returned when the spacetime dimension is not greater than 2.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrNilPotential is returned when the profile carries no potential function.
	ErrNilPotential = errors.New("nil potential")
	// ErrNonFiniteSample is returned when a radius or field value is NaN or infinite.
	ErrNonFiniteSample = errors.New("non-finite sample")
)

// Configuration errors.
var (
	// ErrInvalidOption is returned when an estimator option carries an unusable value.
	ErrInvalidOption = errors.New("invalid option")
)
