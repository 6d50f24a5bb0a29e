package estimate

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/phiinf/asymptotic"
	"github.com/arloliu/phiinf/internal/lsq"
	"github.com/arloliu/phiinf/profile"
)

// MasslessFitPoints is the number of outermost samples the massless fit uses.
const MasslessFitPoints = 5

// MasslessTailFit fits the outermost samples of a massless profile to
//
//	phi(r) - phiMeta ≈ phiInf·C(dim)·r^(2-dim) + offset
//
// and returns log phiInf. The linear error combines the standard error of
// phiInf with the offset expressed in phiInf units at the boundary radius,
// and is mapped to log space as |log(1 - linearError/phiInf)|.
//
// Returns:
//   - Result: The estimate with MethodMasslessFit. A non-positive phiInf gives
//     the failure Result; a linear error not below phiInf gives an infinite error.
func MasslessTailFit(p *profile.Profile) Result {
	n := p.Len()
	start := n - MasslessFitPoints
	c := asymptotic.MasslessConstant(p.Dim)
	power := float64(2 - p.Dim)

	design := mat.NewDense(MasslessFitPoints, 2, nil)
	y := make([]float64, MasslessFitPoints)
	for k := range MasslessFitPoints {
		design.Set(k, 0, c*math.Pow(p.R[start+k], power))
		design.Set(k, 1, 1)
		y[k] = p.Phi[start+k] - p.PhiMetaMin
	}

	fit, err := lsq.Weighted(design, y, nil, false)
	if err != nil {
		return failed(MethodMasslessFit)
	}

	phiInf, offset := fit.Params[0], fit.Params[1]
	if !(phiInf > 0) {
		return failed(MethodMasslessFit)
	}

	value := math.Log(phiInf)
	linearError := fit.StdErr(0) + math.Abs(offset)/(c*math.Pow(p.R[n-1], power))
	if !(linearError < phiInf) {
		return Result{Value: value, Error: math.Inf(1), Method: MethodMasslessFit}
	}

	return Result{Value: value, Error: math.Abs(math.Log1p(-linearError / phiInf)), Method: MethodMasslessFit}
}

// masslessCandidates returns the massless fit and the massless geometric
// estimate in comparison order.
func masslessCandidates(p *profile.Profile) []Result {
	return []Result{MasslessTailFit(p), Geometric(p, 0)}
}

// Massless estimates log phiInf for a massless profile, choosing between the
// power-law tail fit and the geometric estimate by smallest error.
func Massless(p *profile.Profile) Result {
	return SelectBest(masslessCandidates(p)...)
}
