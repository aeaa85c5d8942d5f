package search

import (
	"math/rand/v2"

	"github.com/hupe1980/qmcgo"
)

// defaultSeed seeds the candidate stream when neither WithSeed nor
// WithRand is given, so searches are reproducible out of the box.
const defaultSeed = 7654321

type options struct {
	rng     *rand.Rand
	seed    uint64
	workers int
	logger  *qmcgo.Logger
	metrics qmcgo.MetricsCollector
}

// Option configures a searcher.
type Option func(*options)

// WithSeed seeds the random number generator used by the random scans.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithRand sets the random number generator used by the random scans,
// overriding WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithWorkers sets the number of goroutines scans may use. Values
// below 2 keep scans on the calling goroutine. Exhaustive scans
// partition the candidate range and return exactly the serial result;
// random scans split the tries across per-worker streams derived from
// the configured generator, so their result is reproducible for a
// fixed seed and worker count but differs from the serial one.
//
// The kernel's evaluation must be safe for concurrent calls; all
// kernels in package discrepancy are.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger *qmcgo.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the metrics collector. Defaults to a no-op
// collector.
func WithMetrics(collector qmcgo.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = collector
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		seed:    defaultSeed,
		workers: 1,
		logger:  qmcgo.NoopLogger(),
		metrics: qmcgo.NoopMetricsCollector{},
	}

	for _, fn := range opts {
		if fn != nil {
			fn(o)
		}
	}

	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(o.seed, o.seed))
	}
	if o.workers < 1 {
		o.workers = 1
	}

	return o
}
