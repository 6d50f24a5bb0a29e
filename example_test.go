package phiinf_test

import (
	"fmt"
	"log"
	"math"

	"github.com/arloliu/phiinf"
	"github.com/arloliu/phiinf/asymptotic"
	"github.com/arloliu/phiinf/profile"
)

// ExampleEstimate demonstrates the top-level entry point on a massless profile.
func ExampleEstimate() {
	const n = 100
	r := make([]float64, n)
	phi := make([]float64, n)
	for i := range n {
		r[i] = 1 + 0.5*float64(i)
		phi[i] = 1.5 * asymptotic.MasslessConstant(4) / (r[i] * r[i])
	}

	p := &profile.Profile{
		R:        r,
		Phi:      phi,
		Dim:      4,
		Massless: true,
		V:        func(f float64) float64 { return -f * f * f },
	}

	res, err := phiinf.Estimate(p)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("phiInf: %.3f\n", math.Exp(res.Value))

	// Output:
	// phiInf: 1.500
}
