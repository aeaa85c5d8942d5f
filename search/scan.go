package search

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/qmcgo"
	"github.com/hupe1980/qmcgo/discrepancy"
	"github.com/hupe1980/qmcgo/internal/intmath"
	"github.com/hupe1980/qmcgo/pointset"
)

// config carries what every searcher kind shares: the objective and
// its evaluation path, the candidate filter flags, and the scan
// options.
type config struct {
	kern   Objective
	gen    discrepancy.GeneratorKernel
	mat    discrepancy.Kernel
	n      int
	maxDim int
	gamma  []float64
	primeN bool
	power2 bool

	rng     *rand.Rand
	workers int
	logger  *qmcgo.Logger
	metrics qmcgo.MetricsCollector
}

// newConfig validates the objective and binds its evaluation path.
// minPoints is the smallest kernel size leaving the searcher a
// non-empty candidate range.
func newConfig(kern Objective, primeN bool, minPoints int, opts []Option) (*config, error) {
	if kern == nil {
		return nil, errors.New("search: kernel is nil")
	}

	c := &config{kern: kern, primeN: primeN}

	// Kernels evaluating generator vectors directly skip the point
	// materialization; anything else goes through a scratch lattice.
	switch k := kern.(type) {
	case discrepancy.GeneratorKernel:
		c.gen = k
	case discrepancy.Kernel:
		c.mat = k
	default:
		return nil, fmt.Errorf("search: kernel %s evaluates neither generator vectors nor point matrices", kern.Name())
	}

	c.n = kern.NumPoints()
	if c.n < minPoints {
		return nil, fmt.Errorf("search: kernel must be sized for at least %d points, got %d", minPoints, c.n)
	}

	c.maxDim = kern.Dim()
	c.gamma = kern.Gamma()
	c.power2 = intmath.IsPowerOfTwo(c.n)

	o := applyOptions(opts)
	c.rng = o.rng
	c.workers = o.workers
	c.logger = o.logger.WithKernel(kern.Name())
	c.metrics = o.metrics

	return c, nil
}

func (c *config) checkDim(dim int) error {
	if dim < 2 {
		return fmt.Errorf("search: dimension must be at least 2, got %d", dim)
	}
	if dim > c.maxDim {
		return fmt.Errorf("search: dimension %d exceeds the kernel dimension %d", dim, c.maxDim)
	}

	return nil
}

func checkTries(tries int) error {
	if tries < 1 {
		return fmt.Errorf("search: tries must be positive, got %d", tries)
	}

	return nil
}

// draw returns one admissible component value in [lo, n), resampling
// draws that fail the coprimality filter. For a power-of-two n the low
// bit is forced instead, using a single draw.
func (c *config) draw(rng *rand.Rand, cand *candidates, lo int, coprime bool) int {
	v := lo + rng.IntN(c.n-lo)
	if !coprime || c.primeN {
		return v
	}

	if c.power2 {
		return v | 1
	}

	for !cand.contains(v) {
		v = lo + rng.IntN(c.n-lo)
	}

	return v
}

// evaluator computes the kernel value of one candidate generator
// vector. Each worker owns its own evaluator, so concurrent scans
// never share scratch state.
type evaluator struct {
	gen    discrepancy.GeneratorKernel
	mat    discrepancy.Kernel
	gamma  []float64
	n      int
	a      []int
	lat    *pointset.Rank1
	points [][]float64
}

func (c *config) newEvaluator() *evaluator {
	ev := &evaluator{gen: c.gen, mat: c.mat, gamma: c.gamma, n: c.n}

	ev.a = make([]int, c.maxDim)
	for j := range ev.a {
		ev.a[j] = 1
	}

	if ev.gen != nil {
		return ev
	}

	ev.lat, _ = pointset.NewRank1(c.n, ev.a, c.maxDim) // sizes validated by newConfig
	ev.points = make([][]float64, c.n)
	for i := range ev.points {
		ev.points[i] = make([]float64, c.maxDim)
	}

	return ev
}

// value evaluates the scratch vector truncated to dim components.
func (ev *evaluator) value(dim int) float64 {
	if ev.gen != nil {
		return ev.gen.ComputeGenerator(ev.a, dim)
	}

	_ = ev.lat.SetGenerator(ev.a) // length fixed at construction
	ev.lat.Fill(ev.points, dim)

	return ev.mat.Compute(ev.points, ev.n, dim, ev.gamma)
}

// scanResult is the outcome of one scan chunk: the best accepted
// candidate (a is nil if none was accepted), its enumeration index for
// tie-breaking, and the evaluation counters.
type scanResult struct {
	val    float64
	idx    uint64
	a      []int
	evals  int64
	losses int64
}

// consider folds candidate k with kernel value v into the running
// result. Negative values signal precision loss and never win; ties on
// the value keep the earlier candidate.
func (c *config) consider(res *scanResult, v float64, k uint64, a []int, dim int) {
	res.evals++

	if v < 0 {
		res.losses++
		c.metrics.RecordPrecisionLoss()
		return
	}

	if v < res.val {
		res.val = v
		res.idx = k
		res.a = append(res.a[:0], a[:dim]...)
		c.metrics.RecordImprovement(v)
	}
}

// betterResult merges two chunk results, preferring the smaller value
// and, on a tie, the smaller enumeration index. Counters accumulate.
func betterResult(a, b scanResult) scanResult {
	pick := a
	if b.a != nil && (a.a == nil || b.val < a.val || (b.val == a.val && b.idx < a.idx)) {
		pick = b
	}

	pick.evals = a.evals + b.evals
	pick.losses = a.losses + b.losses

	return pick
}

// scanOdometer evaluates the vectors [lo, hi) of an odometer
// enumeration over cand. hi may exceed the enumeration size; the scan
// stops at whichever comes first.
func (c *config) scanOdometer(ev *evaluator, cand *candidates, dim int, lo, hi uint64, prog *progress) scanResult {
	res := scanResult{val: math.Inf(1)}
	if lo >= hi {
		return res
	}

	od := newOdometer(cand, ev.a, dim)
	if lo > 0 {
		od.seek(lo)
	}

	for k := lo; ; {
		c.consider(&res, ev.value(dim), k, ev.a, dim)
		prog.tick(k, res.val)

		k++
		if k >= hi || !od.next() {
			break
		}
	}

	return res
}

// scanSeq evaluates the candidates [lo, hi) of a scalar enumeration.
// set writes candidate k into the evaluator's scratch vector.
func (c *config) scanSeq(ev *evaluator, set func(*evaluator, int), dim, lo, hi int, prog *progress) scanResult {
	res := scanResult{val: math.Inf(1)}

	for k := lo; k < hi; k++ {
		set(ev, k)
		c.consider(&res, ev.value(dim), uint64(k), ev.a, dim)
		prog.tick(uint64(k), res.val)
	}

	return res
}

const (
	progressInterval = time.Second
	progressStride   = 4096
)

// progress throttles scan progress logging to roughly one line per
// second, checking the limiter only every progressStride candidates. A
// nil progress is silent.
type progress struct {
	logger *qmcgo.Logger
	lim    *rate.Limiter
	kind   string
	dim    int
}

func (c *config) newProgress(kind string, dim int) *progress {
	return &progress{
		logger: c.logger,
		lim:    rate.NewLimiter(rate.Every(progressInterval), 1),
		kind:   kind,
		dim:    dim,
	}
}

func (p *progress) tick(candidate uint64, best float64) {
	if p == nil || candidate%progressStride != 0 || !p.lim.Allow() {
		return
	}

	p.logger.Debug("scan progress",
		"kind", p.kind,
		"dim", p.dim,
		"candidate", candidate,
		"best", best,
	)
}
