package search

import (
	"fmt"
	"math"
	"time"
)

const (
	kindCBCExhaust        = "cbc-exhaust"
	kindCBCExhaustCoprime = "cbc-exhaust-coprime"
	kindCBCRandom         = "cbc-random"
	kindCBCRandomCoprime  = "cbc-random-coprime"
)

// CBC searches for a generator vector component by component: the
// winning prefix of dimension j is kept and only the component of
// dimension j+1 is scanned, so an exhaustive construction costs
// O(dim*n) kernel evaluations instead of the O(n^(dim-1)) of a full
// scan. The construction is greedy; the result is usually close to,
// but not guaranteed to be, the full-scan optimum.
type CBC struct {
	cfg      *config
	bestVal  float64
	bestAs   []int
	bestVals []float64
}

// NewCBC creates a component-by-component searcher minimizing kern.
// Set primeN if the kernel's number of points is a prime.
func NewCBC(kern Objective, primeN bool, opts ...Option) (*CBC, error) {
	cfg, err := newConfig(kern, primeN, 2, opts)
	if err != nil {
		return nil, err
	}

	return &CBC{cfg: cfg, bestVal: math.Inf(1)}, nil
}

// Exhaust scans all values in [1, n) for each component in turn and
// returns the kernel value of the completed dim-dimensional generator.
func (c *CBC) Exhaust(dim int) (float64, error) {
	return c.exhaust(dim, false, kindCBCExhaust)
}

// ExhaustCoprime is Exhaust restricted to components coprime with n.
func (c *CBC) ExhaustCoprime(dim int) (float64, error) {
	return c.exhaust(dim, true, kindCBCExhaustCoprime)
}

// Random draws tries values for each component in turn, keeping the
// best draw before moving to the next component. When tries is at
// least n it falls back to Exhaust, which costs no more and cannot
// miss. Random scans stay on the calling goroutine even with
// WithWorkers: the draws for one component depend on the stream state
// left by the previous one.
func (c *CBC) Random(dim, tries int) (float64, error) {
	return c.random(dim, tries, false, kindCBCRandom, kindCBCExhaust)
}

// RandomCoprime is Random with draws redrawn until coprime with n, and
// falls back to ExhaustCoprime when tries is at least n.
func (c *CBC) RandomCoprime(dim, tries int) (float64, error) {
	return c.random(dim, tries, true, kindCBCRandomCoprime, kindCBCExhaustCoprime)
}

// BestValue returns the kernel value of the completed generator found
// by the most recent search, or +Inf if there is none.
func (c *CBC) BestValue() float64 {
	return c.bestVal
}

// BestGenerator returns a copy of the best generator vector found by
// the most recent search, or nil if there is none.
func (c *CBC) BestGenerator() []int {
	if c.bestAs == nil {
		return nil
	}

	out := make([]int, len(c.bestAs))
	copy(out, c.bestAs)

	return out
}

// BestValues returns a copy of the per-component best values of the
// most recent search: index j holds the kernel value of the winning
// (j+1)-dimensional prefix. Index 0 holds -1, since the first
// component is fixed at 1 and never searched. It returns nil if there
// is no completed search.
func (c *CBC) BestValues() []float64 {
	if c.bestVals == nil {
		return nil
	}

	out := make([]float64, len(c.bestVals))
	copy(out, c.bestVals)

	return out
}

func (c *CBC) exhaust(dim int, coprime bool, kind string) (float64, error) {
	if err := c.cfg.checkDim(dim); err != nil {
		return 0, err
	}

	start := time.Now()
	cand := newCandidates(c.cfg.n, 1, coprime, c.cfg.primeN)
	vals := cand.list()
	count := len(vals)

	bestAs := make([]int, dim)
	bestAs[0] = 1
	bestVals := make([]float64, dim)
	bestVals[0] = -1

	ev := c.cfg.newEvaluator()

	var evals int64

	for j := 1; j < dim; j++ {
		set := func(ev *evaluator, k int) { ev.a[j] = int(vals[k]) }

		var (
			res scanResult
			err error
		)

		if workers := capWorkers(c.cfg.workers, uint64(count)); workers > 1 {
			init := func(wev *evaluator) { copy(wev.a[:j], bestAs[:j]) }
			res, err = c.cfg.scanSeqParallel(count, j+1, workers, init, set)
			if err != nil {
				return 0, err
			}
		} else {
			res = c.cfg.scanSeq(ev, set, j+1, 0, count, c.cfg.newProgress(kind, j+1))
		}

		evals += res.evals
		if res.a == nil {
			return 0, c.fail(kind, dim, j+1, evals, start)
		}

		winner := res.a[j]
		ev.a[j] = winner
		bestAs[j] = winner
		bestVals[j] = res.val
	}

	return c.finish(kind, dim, bestAs, bestVals, evals, start)
}

func (c *CBC) random(dim, tries int, coprime bool, kind, exhaustKind string) (float64, error) {
	if err := c.cfg.checkDim(dim); err != nil {
		return 0, err
	}
	if err := checkTries(tries); err != nil {
		return 0, err
	}

	if tries >= c.cfg.n {
		return c.exhaust(dim, coprime, exhaustKind)
	}

	start := time.Now()
	cand := newCandidates(c.cfg.n, 1, coprime, c.cfg.primeN)

	bestAs := make([]int, dim)
	bestAs[0] = 1
	bestVals := make([]float64, dim)
	bestVals[0] = -1

	ev := c.cfg.newEvaluator()

	var evals int64

	for j := 1; j < dim; j++ {
		set := func(ev *evaluator, _ int) { ev.a[j] = c.cfg.draw(c.cfg.rng, cand, 1, coprime) }

		res := c.cfg.scanSeq(ev, set, j+1, 0, tries, c.cfg.newProgress(kind, j+1))

		evals += res.evals
		if res.a == nil {
			return 0, c.fail(kind, dim, j+1, evals, start)
		}

		winner := res.a[j]
		ev.a[j] = winner
		bestAs[j] = winner
		bestVals[j] = res.val
	}

	return c.finish(kind, dim, bestAs, bestVals, evals, start)
}

func (c *CBC) finish(kind string, dim int, bestAs []int, bestVals []float64, evals int64, start time.Time) (float64, error) {
	c.bestVal = bestVals[dim-1]
	c.bestAs = bestAs
	c.bestVals = bestVals

	c.cfg.metrics.RecordSearch(kind, evals, time.Since(start), nil)
	c.cfg.logger.LogSearch(kind, dim, evals, c.bestVal, nil)

	return c.bestVal, nil
}

func (c *CBC) fail(kind string, dim, failedDim int, evals int64, start time.Time) error {
	err := fmt.Errorf("%w (component %d)", ErrNoReliableCandidate, failedDim)

	c.cfg.metrics.RecordSearch(kind, evals, time.Since(start), err)
	c.cfg.logger.LogSearch(kind, dim, evals, math.Inf(1), err)

	c.bestVal = math.Inf(1)
	c.bestAs = nil
	c.bestVals = nil

	return err
}
