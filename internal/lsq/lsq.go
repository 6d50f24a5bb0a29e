// Package lsq fits linear models by weighted least squares and reports the
// parameter covariance, in the manner of a curve fitter.
package lsq

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// sigmaFloor bounds the smallest sigma relative to the largest one, so that
// zero sigmas do not produce infinite weights.
const sigmaFloor = 1e-12

var (
	// ErrUnderdetermined is returned when there are fewer observations than parameters.
	ErrUnderdetermined = errors.New("lsq: fewer observations than parameters")
	// ErrSingular is returned when the weighted design matrix is rank deficient.
	ErrSingular = errors.New("lsq: singular design")
	// ErrDimension is returned when design, observations and sigmas disagree in length.
	ErrDimension = errors.New("lsq: dimension mismatch")
)

// Fit is a fitted linear model.
type Fit struct {
	// Params holds the fitted coefficients in design column order.
	Params []float64
	// Cov is the parameter covariance matrix.
	Cov *mat.Dense
}

// StdErr returns the standard error of parameter i. A negative variance from
// round-off reports as zero.
func (f *Fit) StdErr(i int) float64 {
	v := f.Cov.At(i, i)
	if v < 0 {
		return 0
	}

	return math.Sqrt(v)
}

// Weighted fits y ≈ design·params minimising Σ((y_k - (design·params)_k)/σ_k)².
//
// Parameters:
//   - design: n×p design matrix, one row per observation
//   - y: Observations, length n
//   - sigma: Per-observation standard deviations, length n; nil means unweighted
//   - absoluteSigma: If true the covariance is (XᵀWX)⁻¹ with W = 1/σ², trusting
//     sigma as absolute. If false it is rescaled by the reduced chi-square.
//
// Returns:
//   - Fit: Coefficients and covariance
//   - error: ErrDimension, ErrUnderdetermined or ErrSingular
func Weighted(design *mat.Dense, y, sigma []float64, absoluteSigma bool) (Fit, error) {
	n, p := design.Dims()
	if len(y) != n || (sigma != nil && len(sigma) != n) {
		return Fit{}, fmt.Errorf("%w: %d rows, %d observations, %d sigmas", ErrDimension, n, len(y), len(sigma))
	}
	if n < p {
		return Fit{}, fmt.Errorf("%w: %d < %d", ErrUnderdetermined, n, p)
	}

	scale, sigmaMax := rowScales(sigma, n)

	a := mat.NewDense(n, p, nil)
	a.Apply(func(i, _ int, v float64) float64 { return v * scale[i] }, design)
	b := mat.NewDense(n, 1, nil)
	for i := range n {
		b.Set(i, 0, y[i]*scale[i])
	}

	var qr mat.QR
	qr.Factorize(a)

	var beta mat.Dense
	if err := usable(qr.SolveTo(&beta, false, b)); err != nil {
		return Fit{}, err
	}

	var rFull mat.Dense
	qr.RTo(&rFull)
	var rInv mat.Dense
	if err := usable(rInv.Inverse(rFull.Slice(0, p, 0, p))); err != nil {
		return Fit{}, err
	}
	cov := mat.NewDense(p, p, nil)
	cov.Mul(&rInv, rInv.T())

	switch {
	case absoluteSigma:
		cov.Scale(sigmaMax*sigmaMax, cov)
	case n == p:
		cov.Apply(func(_, _ int, _ float64) float64 { return math.Inf(1) }, cov)
	default:
		var resid mat.Dense
		resid.Mul(a, &beta)
		resid.Sub(b, &resid)
		ssr := mat.Dot(resid.ColView(0), resid.ColView(0))
		cov.Scale(ssr/float64(n-p), cov)
	}

	params := make([]float64, p)
	for i := range p {
		params[i] = beta.At(i, 0)
		if math.IsNaN(params[i]) || math.IsInf(params[i], 0) {
			return Fit{}, fmt.Errorf("%w: non-finite coefficient %d", ErrSingular, i)
		}
	}

	return Fit{Params: params, Cov: cov}, nil
}

// Polynomial fits y ≈ Σ c_j·x^j for j = 0..degree. Params[0] is the intercept.
func Polynomial(x, y, sigma []float64, degree int, absoluteSigma bool) (Fit, error) {
	return Weighted(PolyDesign(x, degree), y, sigma, absoluteSigma)
}

// PolyDesign builds the Vandermonde design [1, x, x², ...] with degree+1 columns.
func PolyDesign(x []float64, degree int) *mat.Dense {
	d := mat.NewDense(len(x), degree+1, nil)
	for i, xi := range x {
		v := 1.0
		for j := 0; j <= degree; j++ {
			d.Set(i, j, v)
			v *= xi
		}
	}

	return d
}

// rowScales returns per-row multipliers σmax/σ_k and σmax, the largest finite
// sigma. Sigmas below sigmaFloor·σmax are floored, infinite or NaN sigmas get
// zero weight. Nil sigmas give unit scales; all-zero sigmas give unit scales
// and σmax = 0.
func rowScales(sigma []float64, n int) ([]float64, float64) {
	scale := make([]float64, n)
	if len(sigma) == 0 {
		floats.AddConst(1, scale)
		return scale, 1
	}

	sigmaMax := 0.0
	for _, s := range sigma {
		if s = math.Abs(s); !math.IsInf(s, 1) && s > sigmaMax {
			sigmaMax = s
		}
	}

	floor := sigmaFloor * sigmaMax
	for i, s := range sigma {
		s = math.Abs(s)
		switch {
		case math.IsInf(s, 1) || math.IsNaN(s):
			scale[i] = 0
		case sigmaMax == 0:
			scale[i] = 1
		default:
			scale[i] = sigmaMax / math.Max(s, floor)
		}
	}

	return scale, sigmaMax
}

// usable accepts ill-conditioning warnings and rejects exact singularity.
func usable(err error) error {
	if err == nil {
		return nil
	}

	var cond mat.Condition
	if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrSingular, err)
}
