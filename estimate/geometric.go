package estimate

import (
	"math"

	"github.com/arloliu/phiinf/asymptotic"
	"github.com/arloliu/phiinf/profile"
)

// geometricIndices returns the profile indices nearest to the three radii
// spaced geometrically between the field midpoint and the outer boundary.
func geometricIndices(p *profile.Profile) [3]int {
	last := p.Last()
	phi0 := p.Phi[0] - p.PhiMetaMin
	phiLast := p.Phi[last] - p.PhiMetaMin
	mid := profile.NearestIndex(p.Phi, p.PhiMetaMin+0.5*(phi0+phiLast))

	rMid, rLast := p.R[mid], p.R[last]
	radii := [3]float64{
		math.Cbrt(rMid * rMid * rLast),
		math.Sqrt(rMid * rLast),
		math.Cbrt(rMid * rLast * rLast),
	}

	var idx [3]int
	for k, r := range radii {
		idx[k] = profile.NearestIndex(p.R, r)
	}

	return idx
}

// Geometric estimates log phiInf from three samples at geometrically spaced
// radii, without screening or regression.
//
// The value is the estimate at the middle radius. The error is the largest
// distance of the other two estimates from it.
//
// Parameters:
//   - p: Profile; must satisfy p.Validate()
//   - mass: Mass used in the asymptotic shape; zero selects the power law
//
// Returns:
//   - Result: The estimate with MethodGeometric; the failure Result if any
//     of the three estimates is not finite
func Geometric(p *profile.Profile, mass float64) Result {
	var est [3]float64
	for k, i := range geometricIndices(p) {
		est[k] = math.Log(math.Abs(p.Phi[i]-p.PhiMetaMin)) - asymptotic.LogShape(p.Dim, mass, p.R[i])
		if math.IsNaN(est[k]) || math.IsInf(est[k], 0) {
			return failed(MethodGeometric)
		}
	}

	bound := math.Max(math.Abs(est[0]-est[1]), math.Abs(est[2]-est[1]))

	return Result{Value: est[1], Error: bound, Method: MethodGeometric}
}
