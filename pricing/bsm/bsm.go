// Package bsm implements closed-form European option prices under the
// Black-Scholes-Merton model and Merton's jump-diffusion series.
//
// These prices serve as reference values for the Fourier pricer.
package bsm

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	mertonMaxTerms = 200
	mertonTol      = 1e-14
)

// Call returns the Black-Scholes price of a European call with spot s0,
// strike k, continuously compounded rate r, maturity t in years and
// volatility sigma.
//
// For t <= 0 the intrinsic value is returned. For sigma <= 0 the payoff is
// deterministic and the discounted forward intrinsic value is returned.
func Call(s0, k, r, t, sigma float64) float64 {
	if t <= 0 {
		return math.Max(s0-k, 0)
	}

	df := math.Exp(-r * t)
	if sigma <= 0 || k <= 0 {
		return math.Max(s0-k*df, 0)
	}

	d1, d2 := d1d2(s0, k, r, t, sigma)
	return s0*distuv.UnitNormal.CDF(d1) - k*df*distuv.UnitNormal.CDF(d2)
}

// Put returns the Black-Scholes price of a European put.
func Put(s0, k, r, t, sigma float64) float64 {
	if t <= 0 {
		return math.Max(k-s0, 0)
	}

	df := math.Exp(-r * t)
	if sigma <= 0 || k <= 0 {
		return math.Max(k*df-s0, 0)
	}

	d1, d2 := d1d2(s0, k, r, t, sigma)
	return k*df*distuv.UnitNormal.CDF(-d2) - s0*distuv.UnitNormal.CDF(-d1)
}

func d1d2(s0, k, r, t, sigma float64) (d1, d2 float64) {
	volSqrtT := sigma * math.Sqrt(t)
	d1 = (math.Log(s0/k) + (r+0.5*sigma*sigma)*t) / volSqrtT
	d2 = d1 - volSqrtT
	return d1, d2
}

// MertonCall returns the price of a European call under Merton's
// jump-diffusion with diffusion volatility sigma, jump intensity lambda and
// normal log-jumps with mean mu and standard deviation delta.
//
// The price is the Poisson-weighted sum of Black-Scholes prices conditional
// on n jumps, truncated once the remaining weight is negligible.
func MertonCall(s0, k, r, t, sigma, lambda, mu, delta float64) float64 {
	if t <= 0 || lambda <= 0 {
		return Call(s0, k, r, t, sigma)
	}

	kappa := math.Exp(mu+0.5*delta*delta) - 1
	lt := lambda * (1 + kappa) * t
	logJump := math.Log(1 + kappa)

	weight := math.Exp(-lt)
	cumulative := 0.0
	price := 0.0
	for n := 0; n < mertonMaxTerms; n++ {
		if n > 0 {
			weight *= lt / float64(n)
		}
		fn := float64(n)
		sigmaN := math.Sqrt(sigma*sigma + fn*delta*delta/t)
		rN := r - lambda*kappa + fn*logJump/t
		price += weight * Call(s0, k, rN, t, sigmaN)

		cumulative += weight
		if n > int(lt) && 1-cumulative < mertonTol {
			break
		}
	}
	return price
}
