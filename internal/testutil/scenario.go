package testutil

import (
	"math"
	"math/cmplx"
)

// Scenario is a lognormal market used as a pricing fixture.
type Scenario struct {
	S0    float64
	R     float64
	Sigma float64
	T     float64
}

// ReferenceScenario is the market the accuracy checks are calibrated on.
var ReferenceScenario = Scenario{S0: 50, R: 0.05, Sigma: 0.3, T: 1}

// Discount returns exp(-r·t).
func (s Scenario) Discount() float64 {
	return math.Exp(-s.R * s.T)
}

// CF returns the lognormal characteristic function in moment-generating
// form, exp((r - σ²/2)·t·v + σ²·t·v²/2).
func (s Scenario) CF() func(v complex128) complex128 {
	drift := complex((s.R-0.5*s.Sigma*s.Sigma)*s.T, 0)
	diffusion := complex(0.5*s.Sigma*s.Sigma*s.T, 0)
	return func(v complex128) complex128 {
		return cmplx.Exp(drift*v + diffusion*v*v)
	}
}
