package carrmadan

import "math"

// Grid holds the log-price discretization shared by the strike axis and
// the price reconstruction. Strikes and prices must come from the same Grid
// so that bin i and strike i refer to the same coordinate.
type Grid struct {
	N      int     // node count
	Eta    float64 // frequency step η
	B      float64 // log-price half-width π/η
	Lambda float64 // log-price step 2b/N
}

// NewGrid derives the log-price domain for frequency step eta and n nodes.
func NewGrid(eta float64, n int) Grid {
	b := math.Pi / eta
	return Grid{
		N:      n,
		Eta:    eta,
		B:      b,
		Lambda: 2 * b / float64(n),
	}
}

// LogStrike returns x_i = -b + λ·i, the log-moneyness ln(K/S0) of node i.
func (g Grid) LogStrike(i int) float64 {
	return -g.B + g.Lambda*float64(i)
}

// Strike returns s0·exp(x_i).
func (g Grid) Strike(s0 float64, i int) float64 {
	return s0 * math.Exp(g.LogStrike(i))
}

// Strikes returns the n grid strikes for spot s0 in increasing order.
func (g Grid) Strikes(s0 float64, opts ...Option) []float64 {
	return g.strikes(s0, applyOptions(opts))
}

func (g Grid) strikes(s0 float64, cfg config) []float64 {
	if g.N <= 0 {
		return []float64{}
	}
	out := make([]float64, g.N)
	fillIndexed(cfg, out, func(i int) float64 {
		return g.Strike(s0, i)
	})
	return out
}

// Strikes returns the n strikes s0·exp(-π/η + (2π/η/n)·i), i = 0..n-1.
//
// The result is index-aligned with the prices returned by [CallPrices] for
// the same eta, s0 and n. n <= 0 yields an empty slice and eta <= 0 yields
// non-finite strikes.
func Strikes(eta, s0 float64, n int, opts ...Option) []float64 {
	return NewGrid(eta, n).Strikes(s0, opts...)
}
