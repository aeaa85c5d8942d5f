package discrepancy

import (
	"math"

	"github.com/hupe1980/qmcgo/internal/bernoulli"
)

// Shift1 is the shift-invariant kernel criterion of order 1. Its
// reproducing kernel is a product over coordinates of
//
//	1 + gamma[r]² B2({x[r] - y[r]}),
//
// where B2 is the Bernoulli polynomial of degree 2 and {·} the
// fractional part. The criterion bounds the worst-case error of randomly
// shifted rules for integrands with square-integrable first derivatives.
type Shift1 struct {
	Params
}

// NewShift1 creates a Shift1 criterion sized for n points in s
// dimensions.
func NewShift1(n, s int, opts ...Option) (*Shift1, error) {
	p, err := newParams(n, s, s, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Shift1{Params: p}, nil
}

// Name returns the kernel identifier.
func (d *Shift1) Name() string { return "Shift1" }

// Compute returns the criterion for the first n points of points in
// dimension s with coordinate weights gamma. Assumes points has at least
// n rows of s coordinates each and gamma at least s positive entries
// (caller's responsibility).
//
// Returns -1 when cancellation drives the squared criterion negative.
func (d *Shift1) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	c1 := shift1Coeffs(gamma, s)

	prod := 1.0
	for r := 0; r < s; r++ {
		prod *= 1.0 + c1[r]*bernoulli.B2AtZero
	}
	disc := prod / float64(n)

	sum := 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			prod = 1.0
			for r := 0; r < s; r++ {
				u := points[i][r] - points[j][r]
				if u < 0.0 {
					u += 1.0
				}
				prod *= 1.0 + c1[r]*bernoulli.Poly2(u)
			}
			sum += prod
		}
	}

	disc += 2.0*sum/(float64(n)*float64(n)) - 1.0

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}

// Compute1 returns the criterion for the first n entries of t with
// weight 1. Returns -1 when cancellation drives the squared criterion
// negative.
func (d *Shift1) Compute1(t []float64, n int) float64 {
	disc := bernoulli.B2AtZero / float64(n)

	sum := 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			h := t[i] - t[j]
			if h < 0.0 {
				h += 1.0
			}
			sum += bernoulli.Poly2(h)
		}
	}

	disc += 2.0 * sum / (float64(n) * float64(n))

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}

// Compute1Weighted returns the criterion for the first n entries of t
// with weight gamma. In one dimension the weight factors out of the
// kernel, so the result is gamma times the unweighted criterion; the -1
// sentinel is passed through unscaled.
func (d *Shift1) Compute1Weighted(t []float64, n int, gamma float64) float64 {
	disc := d.Compute1(t, n)
	if disc < 0.0 {
		return disc
	}

	return gamma * disc
}

func shift1Coeffs(gamma []float64, s int) []float64 {
	c1 := make([]float64, s)
	for r := 0; r < s; r++ {
		c1[r] = gamma[r] * gamma[r]
	}

	return c1
}
