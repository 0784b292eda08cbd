package charfn

import (
	"math"
	"math/cmplx"
)

// Exponent is a Lévy exponent ψ in moment-generating form,
// E[exp(v·L_t)] = exp(t·ψ(v)).
type Exponent func(v complex128) complex128

// RiskNeutral returns the characteristic function of ln(S_t/S_0) under the
// risk-neutral measure for a log-price driven by psi:
//
//	φ(v) = exp(t·((r - ψ(1))·v + ψ(v)))
func RiskNeutral(psi Exponent, r, t float64) func(v complex128) complex128 {
	drift := complex(r, 0) - psi(1)
	tc := complex(t, 0)

	return func(v complex128) complex128 {
		return cmplx.Exp(tc * (drift*v + psi(v)))
	}
}

// Diffusion is the exponent of a Brownian motion with volatility sigma,
// ψ(v) = σ²v²/2.
func Diffusion(sigma float64) Exponent {
	half := complex(0.5*sigma*sigma, 0)
	return func(v complex128) complex128 {
		return half * v * v
	}
}

// MertonJump is the exponent of a diffusion with volatility sigma plus
// compound Poisson jumps of intensity lambda and normal log-jump sizes with
// mean mu and standard deviation delta.
func MertonJump(sigma, lambda, mu, delta float64) Exponent {
	diffusion := Diffusion(sigma)
	lam := complex(lambda, 0)
	m := complex(mu, 0)
	halfVar := complex(0.5*delta*delta, 0)

	return func(v complex128) complex128 {
		return diffusion(v) + lam*(cmplx.Exp(m*v+halfVar*v*v)-1)
	}
}

// VarianceGamma is the exponent of a Brownian motion with drift theta and
// volatility sigma time-changed by a gamma process of variance rate nu,
//
//	ψ(v) = -ln(1 - θνv - σ²νv²/2) / ν
//
// It is finite only while the logarithm's argument stays off the negative
// real axis, which bounds the usable damping coefficient.
func VarianceGamma(sigma, nu, theta float64) Exponent {
	a := complex(theta*nu, 0)
	b := complex(0.5*sigma*sigma*nu, 0)
	invNu := complex(1/nu, 0)

	return func(v complex128) complex128 {
		return -cmplx.Log(1-a*v-b*v*v) * invNu
	}
}

// CGMY is the exponent of the Carr-Geman-Madan-Yor tempered stable
// process,
//
//	ψ(v) = C·Γ(-Y)·((M-v)^Y - M^Y + (G+v)^Y - G^Y)
//
// valid for -G < Re v < M and Y < 2, Y ∉ {0, 1}.
func CGMY(c, g, m, y float64) Exponent {
	scale := complex(c*math.Gamma(-y), 0)
	yc := complex(y, 0)
	gc := complex(g, 0)
	mc := complex(m, 0)
	mY := complex(math.Pow(m, y), 0)
	gY := complex(math.Pow(g, y), 0)

	return func(v complex128) complex128 {
		return scale * (cmplx.Pow(mc-v, yc) - mY + cmplx.Pow(gc+v, yc) - gY)
	}
}

// BlackScholes returns the lognormal characteristic function
// exp((r - σ²/2)·t·v + σ²·t·v²/2).
func BlackScholes(r, sigma, t float64) func(v complex128) complex128 {
	return RiskNeutral(Diffusion(sigma), r, t)
}

// Merton returns the risk-neutral Merton jump-diffusion characteristic
// function.
func Merton(r, sigma, lambda, mu, delta, t float64) func(v complex128) complex128 {
	return RiskNeutral(MertonJump(sigma, lambda, mu, delta), r, t)
}

// VG returns the risk-neutral Variance Gamma characteristic function.
func VG(r, sigma, nu, theta, t float64) func(v complex128) complex128 {
	return RiskNeutral(VarianceGamma(sigma, nu, theta), r, t)
}

// TemperedStable returns the risk-neutral CGMY characteristic function.
func TemperedStable(r, c, g, m, y, t float64) func(v complex128) complex128 {
	return RiskNeutral(CGMY(c, g, m, y), r, t)
}
