package search

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// Objective is the part of a discrepancy kernel a search needs. All
// kernels in package discrepancy satisfy it. A kernel additionally
// implementing discrepancy.GeneratorKernel is evaluated straight from
// the candidate generator vector; any other kernel must implement
// discrepancy.Kernel and candidates are materialized as rank-1 lattice
// point sets before evaluation.
type Objective interface {
	Name() string
	NumPoints() int
	Dim() int
	Gamma() []float64
}

// ErrNoReliableCandidate is returned when every candidate of a scan
// reported precision loss (a negative kernel value), leaving no best
// generator.
var ErrNoReliableCandidate = errors.New("search: no candidate evaluated without precision loss")

// Scan kinds reported to loggers and metrics collectors.
const (
	kindExhaust        = "exhaust"
	kindExhaustCoprime = "exhaust-coprime"
	kindRandom         = "random"
	kindRandomCoprime  = "random-coprime"
)

// Searcher looks for the generator vector of a rank-1 lattice
// minimizing a discrepancy kernel. The lattice has as many points as
// the kernel was sized for, and the first component of every candidate
// vector is fixed at 1.
//
// A Searcher is not safe for concurrent use; the parallelism enabled
// by WithWorkers happens inside a single call.
type Searcher struct {
	cfg     *config
	bestVal float64
	bestAs  []int
}

// New creates a Searcher minimizing kern. Set primeN if the kernel's
// number of points is a prime; the coprime scans then skip the
// coprimality filter, which is vacuous for a prime.
func New(kern Objective, primeN bool, opts ...Option) (*Searcher, error) {
	cfg, err := newConfig(kern, primeN, 2, opts)
	if err != nil {
		return nil, err
	}

	return &Searcher{cfg: cfg, bestVal: math.Inf(1)}, nil
}

// Exhaust scans every generator vector (1, a_1, ..., a_{dim-1}) with
// components in [1, n), evaluating the kernel in dim dimensions over
// the n-point lattice each vector generates, and returns the smallest
// value found. On ties the vector enumerated first wins.
func (s *Searcher) Exhaust(dim int) (float64, error) {
	return s.exhaust(dim, false, kindExhaust)
}

// ExhaustCoprime is Exhaust restricted to components coprime with n.
func (s *Searcher) ExhaustCoprime(dim int) (float64, error) {
	return s.exhaust(dim, true, kindExhaustCoprime)
}

// Random evaluates tries generator vectors with components drawn
// uniformly from [1, n) and returns the smallest value found. Vectors
// may repeat.
func (s *Searcher) Random(dim, tries int) (float64, error) {
	return s.random(dim, tries, false, kindRandom)
}

// RandomCoprime is Random with components redrawn until coprime with
// n. For a power-of-two n the low bit of a single draw is forced
// instead.
func (s *Searcher) RandomCoprime(dim, tries int) (float64, error) {
	return s.random(dim, tries, true, kindRandomCoprime)
}

// BestValue returns the kernel value of the best generator found by
// the most recent search, or +Inf if there is none.
func (s *Searcher) BestValue() float64 {
	return s.bestVal
}

// BestGenerator returns a copy of the best generator vector found by
// the most recent search, or nil if there is none. Its first component
// is always 1.
func (s *Searcher) BestGenerator() []int {
	if s.bestAs == nil {
		return nil
	}

	out := make([]int, len(s.bestAs))
	copy(out, s.bestAs)

	return out
}

func (s *Searcher) exhaust(dim int, coprime bool, kind string) (float64, error) {
	if err := s.cfg.checkDim(dim); err != nil {
		return 0, err
	}

	start := time.Now()
	cand := newCandidates(s.cfg.n, 1, coprime, s.cfg.primeN)

	var (
		res scanResult
		err error
	)

	total, ok := enumSize(uint64(cand.count()), dim-1)
	if workers := capWorkers(s.cfg.workers, total); ok && workers > 1 {
		res, err = s.cfg.scanOdometerParallel(cand, dim, total, workers)
	} else {
		ev := s.cfg.newEvaluator()
		res = s.cfg.scanOdometer(ev, cand, dim, 0, math.MaxUint64, s.cfg.newProgress(kind, dim))
	}
	if err != nil {
		return 0, err
	}

	return s.finish(kind, dim, res, start)
}

func (s *Searcher) random(dim, tries int, coprime bool, kind string) (float64, error) {
	if err := s.cfg.checkDim(dim); err != nil {
		return 0, err
	}
	if err := checkTries(tries); err != nil {
		return 0, err
	}

	start := time.Now()
	cand := newCandidates(s.cfg.n, 1, coprime, s.cfg.primeN)

	fill := func(ev *evaluator, rng *rand.Rand) {
		for j := 1; j < dim; j++ {
			ev.a[j] = s.cfg.draw(rng, cand, 1, coprime)
		}
	}

	var (
		res scanResult
		err error
	)

	if workers := capWorkers(s.cfg.workers, uint64(tries)); workers > 1 {
		res, err = s.cfg.scanRandomParallel(tries, dim, workers, fill)
	} else {
		ev := s.cfg.newEvaluator()
		res = s.cfg.scanSeq(ev, func(ev *evaluator, _ int) { fill(ev, s.cfg.rng) }, dim, 0, tries, s.cfg.newProgress(kind, dim))
	}
	if err != nil {
		return 0, err
	}

	return s.finish(kind, dim, res, start)
}

// finish records the scan outcome and publishes the best candidate.
func (s *Searcher) finish(kind string, dim int, res scanResult, start time.Time) (float64, error) {
	var err error
	if res.a == nil {
		err = ErrNoReliableCandidate
	}

	s.cfg.metrics.RecordSearch(kind, res.evals, time.Since(start), err)
	s.cfg.logger.LogSearch(kind, dim, res.evals, res.val, err)

	if err != nil {
		s.bestVal = math.Inf(1)
		s.bestAs = nil
		return 0, err
	}

	s.bestVal = res.val
	s.bestAs = res.a

	return res.val, nil
}
