package search

import (
	"context"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// splitRange partitions [0, total) into count near-equal chunks and
// returns the i-th one.
func splitRange(total uint64, count, i int) (lo, hi uint64) {
	q := total / uint64(count)
	r := total % uint64(count)

	lo = q*uint64(i) + min(uint64(i), r)
	hi = lo + q
	if uint64(i) < r {
		hi++
	}

	return lo, hi
}

// capWorkers bounds the worker count by the number of candidates, so
// no worker starts with an empty chunk.
func capWorkers(workers int, total uint64) int {
	if uint64(workers) > total {
		return int(total)
	}

	return workers
}

// deriveSeed mixes a parent seed and a stream index with the SplitMix64
// finalizer, giving decorrelated per-worker streams.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// mergeResults folds per-worker chunk results left to right, so ties
// resolve toward the smallest enumeration index.
func mergeResults(results []scanResult) scanResult {
	res := results[0]
	for _, r := range results[1:] {
		res = betterResult(res, r)
	}

	return res
}

// scanOdometerParallel partitions an odometer enumeration of size
// total across workers. The merged result is identical to the serial
// scan, including tie-breaks.
func (c *config) scanOdometerParallel(cand *candidates, dim int, total uint64, workers int) (scanResult, error) {
	cand.list() // materialize before the workers share the set

	results := make([]scanResult, workers)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for w := 0; w < workers; w++ {
		lo, hi := splitRange(total, workers, w)
		g.Go(func() error {
			ev := c.newEvaluator()
			results[w] = c.scanOdometer(ev, cand, dim, lo, hi, nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return scanResult{}, err
	}

	return mergeResults(results), nil
}

// scanSeqParallel partitions a scalar enumeration of count candidates
// across workers. init, when non-nil, prepares each worker's scratch
// vector before its chunk. The merged result is identical to the
// serial scan, including tie-breaks.
func (c *config) scanSeqParallel(count, dim, workers int, init func(*evaluator), set func(*evaluator, int)) (scanResult, error) {
	results := make([]scanResult, workers)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for w := 0; w < workers; w++ {
		lo, hi := splitRange(uint64(count), workers, w)
		g.Go(func() error {
			ev := c.newEvaluator()
			if init != nil {
				init(ev)
			}
			results[w] = c.scanSeq(ev, set, dim, int(lo), int(hi), nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return scanResult{}, err
	}

	return mergeResults(results), nil
}

// scanRandomParallel splits tries across workers, each drawing from
// its own stream derived from the configured generator. The result is
// reproducible for a fixed seed and worker count, but differs from the
// serial scan, which uses a single stream.
func (c *config) scanRandomParallel(tries, dim, workers int, fill func(*evaluator, *rand.Rand)) (scanResult, error) {
	parent := c.rng.Uint64()
	results := make([]scanResult, workers)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for w := 0; w < workers; w++ {
		lo, hi := splitRange(uint64(tries), workers, w)
		g.Go(func() error {
			ev := c.newEvaluator()
			rng := rand.New(rand.NewPCG(
				deriveSeed(parent, uint64(2*w)),
				deriveSeed(parent, uint64(2*w+1)),
			))
			results[w] = c.scanSeq(ev, func(ev *evaluator, _ int) { fill(ev, rng) }, dim, int(lo), int(hi), nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return scanResult{}, err
	}

	return mergeResults(results), nil
}
