package search

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	kindKorobovExhaust        = "korobov-exhaust"
	kindKorobovExhaustCoprime = "korobov-exhaust-coprime"
	kindKorobovRandom         = "korobov-random"
	kindKorobovRandomCoprime  = "korobov-random-coprime"
)

// Korobov searches the one-parameter family of Korobov lattices: each
// candidate is a single multiplier a in [2, n) generating the vector
// (1, a, a^2 mod n, ...), so an exhaustive scan costs O(n) kernel
// evaluations in any dimension.
type Korobov struct {
	cfg     *config
	bestVal float64
	bestA   int
	bestAs  []int
}

// NewKorobov creates a Korobov searcher minimizing kern. The kernel
// must be sized for at least 3 points, leaving a non-empty multiplier
// range [2, n). Set primeN if the number of points is a prime.
func NewKorobov(kern Objective, primeN bool, opts ...Option) (*Korobov, error) {
	cfg, err := newConfig(kern, primeN, 3, opts)
	if err != nil {
		return nil, err
	}

	return &Korobov{cfg: cfg, bestVal: math.Inf(1)}, nil
}

// Exhaust scans every multiplier in [2, n) and returns the smallest
// kernel value found, evaluated in dim dimensions. On ties the
// smallest multiplier wins.
func (k *Korobov) Exhaust(dim int) (float64, error) {
	return k.exhaust(dim, false, kindKorobovExhaust)
}

// ExhaustCoprime is Exhaust restricted to multipliers coprime with n.
func (k *Korobov) ExhaustCoprime(dim int) (float64, error) {
	return k.exhaust(dim, true, kindKorobovExhaustCoprime)
}

// Random evaluates tries multipliers drawn uniformly from [2, n) and
// returns the smallest kernel value found. Draws may repeat. When
// tries is at least n it falls back to Exhaust, which costs no more
// and cannot miss.
func (k *Korobov) Random(dim, tries int) (float64, error) {
	return k.random(dim, tries, false, kindKorobovRandom, kindKorobovExhaust)
}

// RandomCoprime is Random with multipliers redrawn until coprime with
// n, falling back to ExhaustCoprime when tries is at least n. For a
// power-of-two n the low bit of a single draw is forced instead.
func (k *Korobov) RandomCoprime(dim, tries int) (float64, error) {
	return k.random(dim, tries, true, kindKorobovRandomCoprime, kindKorobovExhaustCoprime)
}

// BestValue returns the kernel value of the best multiplier found by
// the most recent search, or +Inf if there is none.
func (k *Korobov) BestValue() float64 {
	return k.bestVal
}

// BestMultiplier returns the best multiplier found by the most recent
// search, or 0 if there is none.
func (k *Korobov) BestMultiplier() int {
	return k.bestA
}

// BestGenerator returns a copy of the generator vector of the best
// multiplier, (1, a, a^2 mod n, ...), or nil if there is none.
func (k *Korobov) BestGenerator() []int {
	if k.bestAs == nil {
		return nil
	}

	out := make([]int, len(k.bestAs))
	copy(out, k.bestAs)

	return out
}

// fillPowers writes the Korobov vector (1, a, a^2 mod n, ...) of
// multiplier a into dst.
func fillPowers(dst []int, a, dim, n int) {
	dst[0] = 1
	for j := 1; j < dim; j++ {
		dst[j] = int(int64(a) * int64(dst[j-1]) % int64(n))
	}
}

func (k *Korobov) exhaust(dim int, coprime bool, kind string) (float64, error) {
	if err := k.cfg.checkDim(dim); err != nil {
		return 0, err
	}

	start := time.Now()
	cand := newCandidates(k.cfg.n, 2, coprime, k.cfg.primeN)
	vals := cand.list()
	count := len(vals)

	set := func(ev *evaluator, i int) { fillPowers(ev.a, int(vals[i]), dim, k.cfg.n) }

	var (
		res scanResult
		err error
	)

	if workers := capWorkers(k.cfg.workers, uint64(count)); workers > 1 {
		res, err = k.cfg.scanSeqParallel(count, dim, workers, nil, set)
	} else {
		ev := k.cfg.newEvaluator()
		res = k.cfg.scanSeq(ev, set, dim, 0, count, k.cfg.newProgress(kind, dim))
	}
	if err != nil {
		return 0, err
	}

	return k.finish(kind, dim, res, start)
}

func (k *Korobov) random(dim, tries int, coprime bool, kind, exhaustKind string) (float64, error) {
	if err := k.cfg.checkDim(dim); err != nil {
		return 0, err
	}
	if err := checkTries(tries); err != nil {
		return 0, err
	}

	if tries >= k.cfg.n {
		return k.exhaust(dim, coprime, exhaustKind)
	}

	start := time.Now()
	cand := newCandidates(k.cfg.n, 2, coprime, k.cfg.primeN)

	fill := func(ev *evaluator, rng *rand.Rand) {
		fillPowers(ev.a, k.cfg.draw(rng, cand, 2, coprime), dim, k.cfg.n)
	}

	var (
		res scanResult
		err error
	)

	if workers := capWorkers(k.cfg.workers, uint64(tries)); workers > 1 {
		res, err = k.cfg.scanRandomParallel(tries, dim, workers, fill)
	} else {
		ev := k.cfg.newEvaluator()
		res = k.cfg.scanSeq(ev, func(ev *evaluator, _ int) { fill(ev, k.cfg.rng) }, dim, 0, tries, k.cfg.newProgress(kind, dim))
	}
	if err != nil {
		return 0, err
	}

	return k.finish(kind, dim, res, start)
}

// finish records the scan outcome and publishes the best multiplier.
func (k *Korobov) finish(kind string, dim int, res scanResult, start time.Time) (float64, error) {
	var err error
	if res.a == nil {
		err = ErrNoReliableCandidate
	}

	k.cfg.metrics.RecordSearch(kind, res.evals, time.Since(start), err)
	k.cfg.logger.LogSearch(kind, dim, res.evals, res.val, err)

	if err != nil {
		k.bestVal = math.Inf(1)
		k.bestA = 0
		k.bestAs = nil
		return 0, err
	}

	k.bestVal = res.val
	k.bestAs = res.a
	k.bestA = res.a[1]

	return res.val, nil
}
