package estimate

import (
	"math"

	"github.com/arloliu/phiinf/asymptotic"
	"github.com/arloliu/phiinf/profile"
)

const (
	testPhiInf = 2.5
	testCubic  = 0.1
)

var testLogPhiInf = math.Log(testPhiInf)

// syntheticProfile builds a dim-4 profile whose tail follows the exact
// asymptotic shape with amplitude testPhiInf, sampled at n evenly spaced radii
// in [r0, r1]. The potential is 1/2·m²·phi² - testCubic·phi³. A non-zero
// correction multiplies each sample by (1 + correction·shape).
func syntheticProfile(mass float64, n int, r0, r1, correction float64) *profile.Profile {
	const dim = 4
	r := make([]float64, n)
	phi := make([]float64, n)
	for i := range n {
		r[i] = r0 + (r1-r0)*float64(i)/float64(n-1)
		shape := math.Exp(asymptotic.LogShape(dim, mass, r[i]))
		phi[i] = testPhiInf * shape * (1 + correction*shape)
	}

	return &profile.Profile{
		R:        r,
		Phi:      phi,
		Dim:      dim,
		MassMeta: mass,
		V: func(f float64) float64 {
			return 0.5*mass*mass*f*f - testCubic*f*f*f
		},
	}
}

// coarseProfile is the 200-point profile on [1, 50] with unit mass.
func coarseProfile() *profile.Profile {
	return syntheticProfile(1, 200, 1, 50, 0)
}

// denseProfile resolves the tail finely enough for the regression path.
func denseProfile() *profile.Profile {
	return syntheticProfile(1, 1000, 1, 30, 0)
}

// correctedProfile carries a non-asymptotic correction that the geometric
// estimate cannot remove.
func correctedProfile() *profile.Profile {
	return syntheticProfile(1, 1000, 1, 30, 0.1)
}

// masslessProfile follows testPhiInf·C(4)·r^-2 on [1, 50].
func masslessProfile() *profile.Profile {
	p := syntheticProfile(0, 200, 1, 50, 0)
	p.Massless = true

	return p
}
