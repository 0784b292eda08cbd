package carrmadan

import "github.com/sourcegraph/conc/iter"

const defaultParallelThreshold = 2048

// Option configures how the per-index stages are scheduled. Options never
// change results.
type Option func(*config)

type config struct {
	maxWorkers        int
	parallelThreshold int
}

func defaultConfig() config {
	return config{
		parallelThreshold: defaultParallelThreshold,
	}
}

// WithMaxWorkers bounds the goroutines used by the per-index maps.
// Zero selects GOMAXPROCS.
func WithMaxWorkers(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.maxWorkers = n
		}
	}
}

// WithParallelThreshold sets the smallest grid that is mapped in parallel.
// Smaller grids run on the calling goroutine.
func WithParallelThreshold(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.parallelThreshold = n
		}
	}
}

// WithSerial runs every stage on the calling goroutine.
func WithSerial() Option {
	return func(cfg *config) {
		cfg.maxWorkers = 1
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (cfg config) serial(n int) bool {
	return cfg.maxWorkers == 1 || n < cfg.parallelThreshold
}

// fillIndexed sets dst[i] = f(i) for every index. Each index owns its slot,
// so the gathered order is the index order whatever the scheduling.
func fillIndexed[T any](cfg config, dst []T, f func(i int) T) {
	if cfg.serial(len(dst)) {
		for i := range dst {
			dst[i] = f(i)
		}
		return
	}

	it := iter.Iterator[T]{MaxGoroutines: cfg.maxWorkers}
	it.ForEachIdx(dst, func(i int, v *T) {
		*v = f(i)
	})
}
