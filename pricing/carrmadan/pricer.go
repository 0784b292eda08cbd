package carrmadan

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Pricer prices calls repeatedly on one fixed grid. The FFT plan is created
// once in [NewPricer] and reused by every call.
//
// A Pricer is safe for concurrent use. Sample construction and
// reconstruction run in parallel across callers; the transform itself is
// serialized on the shared plan.
type Pricer struct {
	grid  Grid
	alpha float64
	cfg   config

	mu   sync.Mutex
	plan *algofft.Plan[complex128]
}

// NewPricer creates a pricer for n nodes, frequency step eta and damping
// coefficient alpha.
func NewPricer(n int, eta, alpha float64, opts ...Option) (*Pricer, error) {
	plan, err := newPlan(n)
	if err != nil {
		return nil, fmt.Errorf("carrmadan: failed to create pricer: %w", err)
	}

	return &Pricer{
		grid:  NewGrid(eta, n),
		alpha: alpha,
		cfg:   applyOptions(opts),
		plan:  plan,
	}, nil
}

// Len returns the number of grid nodes.
func (p *Pricer) Len() int {
	return p.grid.N
}

// Grid returns the log-price grid.
func (p *Pricer) Grid() Grid {
	return p.grid
}

// Alpha returns the damping coefficient.
func (p *Pricer) Alpha() float64 {
	return p.alpha
}

// Strikes returns the grid strikes for spot s0.
func (p *Pricer) Strikes(s0 float64) []float64 {
	return p.grid.strikes(s0, p.cfg)
}

// CallPrices prices calls for spot s0 and discount factor discount. The
// result matches [CallPrices] with the same grid parameters bit for bit.
func (p *Pricer) CallPrices(s0, discount float64, cf CharacteristicFunction) ([]Quote, error) {
	return callPrices(p.forward, p.grid, p.alpha, s0, discount, cf, p.cfg)
}

func (p *Pricer) forward(in []complex128) ([]complex128, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return forward(p.plan, in)
}
