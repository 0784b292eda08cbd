package carrmadan

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Samples builds the FFT input for the damped integrand g on grid:
//
//	s_i = D · g(iη·i) · exp(i·b·η·i) · (3 + (-1)^(i+1)),  s_0 halved
//
// The weights {1, 4, 2, 4, ...} are the Simpson rule without its 1/3,
// which [Reconstruct] applies. The exponential shifts the log-price domain
// to start at -b.
func Samples(grid Grid, discount float64, g CharacteristicFunction, opts ...Option) []complex128 {
	return samples(grid, discount, g, applyOptions(opts))
}

func samples(grid Grid, discount float64, g CharacteristicFunction, cfg config) []complex128 {
	if grid.N <= 0 {
		return []complex128{}
	}
	out := make([]complex128, grid.N)
	fillIndexed(cfg, out, func(i int) complex128 {
		return sample(grid, discount, g, i)
	})
	return out
}

func sample(grid Grid, discount float64, g CharacteristicFunction, i int) complex128 {
	pm := -1.0
	if i%2 == 1 {
		pm = 1.0
	}

	u := float64(i) * grid.Eta
	shift := cmplx.Exp(complex(0, grid.B*float64(i)*grid.Eta))
	s := complex(discount, 0) * g(complex(0, u)) * shift * complex(3+pm, 0)
	if i == 0 {
		s *= 0.5
	}
	return s
}

// Transform samples the damped integrand g on the n-node grid with
// frequency step eta and returns its non-normalized forward DFT.
//
// The damping coefficient enters through g, see [Augment]. n <= 0 returns an
// empty result. Sizes the FFT backend cannot plan return an error wrapping
// [ErrUnsupportedSize].
func Transform(n int, eta, discount float64, g CharacteristicFunction, opts ...Option) ([]complex128, error) {
	if n <= 0 {
		return []complex128{}, nil
	}

	plan, err := newPlan(n)
	if err != nil {
		return nil, err
	}

	return forward(plan, Samples(NewGrid(eta, n), discount, g, opts...))
}

// newPlan creates the forward plan for n nodes. A length-1 DFT is the
// identity, so n == 1 returns a nil plan.
func newPlan(n int) (*algofft.Plan[complex128], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, n)
	}
	if n == 1 {
		return nil, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrUnsupportedSize, n, err)
	}
	return plan, nil
}

func forward(plan *algofft.Plan[complex128], in []complex128) ([]complex128, error) {
	out := make([]complex128, len(in))
	if plan == nil {
		copy(out, in)
		return out, nil
	}

	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("carrmadan: forward FFT failed: %w", err)
	}
	return out, nil
}
