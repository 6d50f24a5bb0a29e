// Package asymptotic evaluates the large-radius shape of a bubble profile.
//
// Far from the bubble wall the field relaxes to the metastable vacuum as
//
//	phi(r) - phiMeta ≈ phiInf · S(dim, m, r)
//
// where the shape S is a scaled modified Bessel function for a massive field
// and a pure power law for a massless one. LogShape returns log S, the basis
// function against which package estimate fits log phiInf.
//
// # Special functions
//
// The modified Bessel function of the second kind grows without bound as its
// argument approaches zero and decays like e^-x for large x, so it is only
// ever evaluated here in the exponentially scaled form e^x·K_ν(x). ScaledBesselK
// integrates the Schläfli representation
//
//	e^x·K_ν(x) = ∫₀^∞ exp(-2x·sinh²(t/2))·cosh(νt) dt
//
// with composite Gauss–Legendre panels from gonum's quad package. The log-gamma
// function comes from the standard library.
package asymptotic
