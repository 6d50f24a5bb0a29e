package asymptotic

import "math"

// Order returns the Bessel order ν = dim/2 - 1 of the asymptotic shape.
func Order(dim int) float64 {
	return float64(dim)/2 - 1
}

// LogShape returns the natural log of the large-radius shape multiplying
// phiInf in the expansion of the field profile.
//
// For m ≠ 0 the shape is (m/r)^ν·K_ν(m·r). For m == 0 it is the power law
// Γ(ν)·2^(ν-1)·r^(-2ν), which is the m → 0 limit of the massive form.
//
// Parameters:
//   - dim: Spacetime dimension, dim > 2
//   - m: Mass at the metastable vacuum
//   - r: Radius, r > 0
//
// Returns:
//   - float64: log of the shape function
func LogShape(dim int, m, r float64) float64 {
	nu := Order(dim)
	if m == 0 {
		return LogMasslessConstant(dim) - 2*nu*math.Log(r)
	}

	x := m * r

	return math.Log(ScaledBesselK(nu, x)) - x - nu*math.Log(r) + nu*math.Log(m)
}

// LogMasslessConstant returns log C(dim) with C(dim) = Γ(ν)·2^(ν-1).
func LogMasslessConstant(dim int) float64 {
	nu := Order(dim)
	lg, _ := math.Lgamma(nu)

	return lg + (nu-1)*math.Ln2
}

// MasslessConstant returns C(dim) = Γ(ν)·2^(ν-1), the amplitude of the
// massless power-law tail per unit phiInf.
func MasslessConstant(dim int) float64 {
	return math.Exp(LogMasslessConstant(dim))
}
