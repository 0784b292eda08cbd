package carrmadan

import (
	"fmt"
	"math"
	"sort"
)

// Interpolate returns call prices at arbitrary strikes by piecewise-linear
// interpolation of quotes in log-strike.
//
// quotes must be non-empty with strictly increasing positive strikes, as
// returned by [CallPrices]. Strikes outside the grid take the end price.
func Interpolate(quotes []Quote, strikes []float64) ([]float64, error) {
	if len(quotes) == 0 {
		return nil, ErrEmptyQuotes
	}

	xs := make([]float64, len(quotes))
	for i, q := range quotes {
		if !(q.Strike > 0) {
			return nil, fmt.Errorf("%w: quote %d has strike %v", ErrInvalidStrike, i, q.Strike)
		}
		xs[i] = math.Log(q.Strike)
		if i > 0 && !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w at index %d", ErrStrikesNotIncreasing, i)
		}
	}

	last := len(quotes) - 1
	out := make([]float64, len(strikes))
	for i, k := range strikes {
		if !(k > 0) {
			return nil, fmt.Errorf("%w: query %d has strike %v", ErrInvalidStrike, i, k)
		}

		x := math.Log(k)
		if x <= xs[0] {
			out[i] = quotes[0].Price
			continue
		}
		if x >= xs[last] {
			out[i] = quotes[last].Price
			continue
		}

		j := sort.SearchFloat64s(xs, x)
		if xs[j] == x {
			out[i] = quotes[j].Price
			continue
		}
		x0, x1 := xs[j-1], xs[j]
		t := (x - x0) / (x1 - x0)
		out[i] = quotes[j-1].Price + t*(quotes[j].Price-quotes[j-1].Price)
	}
	return out, nil
}
