package estimate

import (
	"math"

	"github.com/arloliu/phiinf/asymptotic"
	"github.com/arloliu/phiinf/profile"
)

// DirectEstimate converts the sample at index i into a point estimate of
// log phiInf.
//
// The estimate divides the field displacement by the asymptotic shape. Its
// error bound |log(1 - exp(-2m|Δr|))| reflects that the shape is exact only
// far from the outer boundary: it is +Inf at the boundary sample and shrinks
// exponentially with the distance from it.
//
// Parameters:
//   - p: Profile; must satisfy p.Validate()
//   - i: Sample index, 0 ≤ i < p.Len()
//
// Returns:
//   - Result: The point estimate with MethodDirect; the failure Result for a
//     massless profile, where the bound is singular
func DirectEstimate(p *profile.Profile, i int) Result {
	m := p.MassMeta
	if m == 0 {
		return failed(MethodDirect)
	}

	deltaPhi := p.Phi[i] - p.PhiMetaMin
	deltaR := p.R[i] - p.R[p.Last()]

	value := math.Log(math.Abs(deltaPhi)) - asymptotic.LogShape(p.Dim, m, p.R[i])
	bcError := math.Abs(math.Log1p(-math.Exp(-2 * math.Abs(m*deltaR))))

	return Result{Value: value, Error: bcError, Method: MethodDirect}
}
