package carrmadan

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Quote is a call price at one strike.
type Quote struct {
	Strike float64
	Price  float64
}

// Reconstruct converts the transform output into call prices:
//
//	price_i = S0 · Re(out_i) · exp(-α·x_i) · η / (3π)
//
// with x_i = grid.LogStrike(i), paired with grid.Strike(s0, i). spectrum
// must come from [Transform] on the same grid.
func Reconstruct(grid Grid, spectrum []complex128, alpha, s0 float64, opts ...Option) []Quote {
	return reconstruct(grid, spectrum, alpha, s0, applyOptions(opts))
}

func reconstruct(grid Grid, spectrum []complex128, alpha, s0 float64, cfg config) []Quote {
	n := len(spectrum)
	if n == 0 {
		return []Quote{}
	}

	re := make([]float64, n)
	for i, c := range spectrum {
		re[i] = real(c)
	}

	scale := s0 * grid.Eta / (3 * math.Pi)
	factor := make([]float64, n)
	fillIndexed(cfg, factor, func(i int) float64 {
		return scale * math.Exp(-alpha*grid.LogStrike(i))
	})

	prices := make([]float64, n)
	vecmath.MulBlock(prices, re, factor)

	quotes := make([]Quote, n)
	fillIndexed(cfg, quotes, func(i int) Quote {
		return Quote{Strike: grid.Strike(s0, i), Price: prices[i]}
	})
	return quotes
}

// CallPrices prices European calls on the n-node strike grid.
//
// eta is the frequency step, alpha the damping coefficient, s0 the spot and
// discount the factor exp(-r·t). cf is evaluated exactly n times. The
// returned quotes are in increasing strike order and their strikes equal
// [Strikes](eta, s0, n).
//
// n should be a power of two. n <= 0 returns no quotes. A size the FFT
// backend rejects returns an error wrapping [ErrUnsupportedSize].
func CallPrices(n int, eta, alpha, s0, discount float64, cf CharacteristicFunction, opts ...Option) ([]Quote, error) {
	if n <= 0 {
		return []Quote{}, nil
	}

	plan, err := newPlan(n)
	if err != nil {
		return nil, err
	}

	fft := func(in []complex128) ([]complex128, error) {
		return forward(plan, in)
	}
	return callPrices(fft, NewGrid(eta, n), alpha, s0, discount, cf, applyOptions(opts))
}

func callPrices(
	fft func([]complex128) ([]complex128, error),
	grid Grid,
	alpha, s0, discount float64,
	cf CharacteristicFunction,
	cfg config,
) ([]Quote, error) {
	in := samples(grid, discount, Augment(cf, alpha), cfg)

	out, err := fft(in)
	if err != nil {
		return nil, err
	}

	return reconstruct(grid, out, alpha, s0, cfg), nil
}

// Split returns the strikes and prices of quotes as separate slices.
func Split(quotes []Quote) (strikes, prices []float64) {
	strikes = make([]float64, len(quotes))
	prices = make([]float64, len(quotes))
	for i, q := range quotes {
		strikes[i] = q.Strike
		prices[i] = q.Price
	}
	return strikes, prices
}
