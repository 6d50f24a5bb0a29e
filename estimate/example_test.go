package estimate_test

import (
	"fmt"
	"log"
	"math"

	"github.com/arloliu/phiinf/asymptotic"
	"github.com/arloliu/phiinf/estimate"
	"github.com/arloliu/phiinf/profile"
)

// exampleProfile samples a dim-4 profile with unit mass and amplitude 2.5.
func exampleProfile() *profile.Profile {
	const n = 200
	r := make([]float64, n)
	phi := make([]float64, n)
	for i := range n {
		r[i] = 1 + 49*float64(i)/(n-1)
		phi[i] = 2.5 * math.Exp(asymptotic.LogShape(4, 1, r[i]))
	}

	return &profile.Profile{
		R:        r,
		Phi:      phi,
		Dim:      4,
		MassMeta: 1,
		V:        func(f float64) float64 { return 0.5*f*f - 0.1*f*f*f },
	}
}

// ExampleEstimator_Estimate demonstrates estimating log phiInf for a profile.
func ExampleEstimator_Estimate() {
	est, err := estimate.New(estimate.WithTolerance(1e-3))
	if err != nil {
		log.Fatal(err)
	}

	res, err := est.Estimate(exampleProfile())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("log phiInf: %.4f\n", res.Value)
	fmt.Printf("phiInf: %.4f\n", math.Exp(res.Value))
	fmt.Printf("usable: %v\n", res.Usable())

	// Output:
	// log phiInf: 0.9163
	// phiInf: 2.5000
	// usable: true
}

// ExampleEstimator_Report demonstrates inspecting every candidate estimate.
func ExampleEstimator_Report() {
	est, err := estimate.New()
	if err != nil {
		log.Fatal(err)
	}

	report, err := est.Report(exampleProfile())
	if err != nil {
		log.Fatal(err)
	}

	for _, c := range report.Candidates {
		fmt.Println(c.Method)
	}

	// Output:
	// regression
	// regression-retry
	// geometric
}

// ExampleSelectBest demonstrates the minimum-error selection.
func ExampleSelectBest() {
	best := estimate.SelectBest(
		estimate.Result{Value: 0.91, Error: 0.02, Method: estimate.MethodRegression},
		estimate.Result{Value: 0.93, Error: 0.01, Method: estimate.MethodGeometric},
	)
	fmt.Println(best)

	// Output:
	// Result{Method: geometric, Value: 0.93, Error: 0.01}
}
