package discrepancy

import (
	"math"

	"github.com/hupe1980/qmcgo/internal/bernoulli"
)

// Shift2 is the shift-invariant kernel criterion of order 2, whose
// kernel is a product over coordinates of
//
//	1 + (gamma[r]²/2) B2({x[r] - y[r]}) - (gamma[r]⁴/12) B4({x[r] - y[r]}).
//
// It bounds the worst-case error of randomly shifted rules for
// integrands with square-integrable second derivatives.
type Shift2 struct {
	Params
}

// NewShift2 creates a Shift2 criterion sized for n points in s
// dimensions.
func NewShift2(n, s int, opts ...Option) (*Shift2, error) {
	p, err := newParams(n, s, s, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Shift2{Params: p}, nil
}

// Name returns the kernel identifier.
func (d *Shift2) Name() string { return "Shift2" }

// Compute returns the criterion for the first n points of points in
// dimension s with coordinate weights gamma. Assumes points has at least
// n rows of s coordinates each and gamma at least s positive entries
// (caller's responsibility).
//
// Returns -1 when cancellation drives the squared criterion negative.
func (d *Shift2) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	c1, c2 := shift2Coeffs(gamma, s)

	prod := 1.0
	for r := 0; r < s; r++ {
		prod *= 1.0 + c1[r]*bernoulli.B2AtZero - c2[r]*bernoulli.B4AtZero
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
				prod *= 1.0 + c1[r]*bernoulli.Poly2(u) - c2[r]*bernoulli.Poly4(u)
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
// weight 1.
func (d *Shift2) Compute1(t []float64, n int) float64 {
	return d.Compute1Weighted(t, n, 1.0)
}

// Compute1Weighted returns the criterion for the first n entries of t
// with weight gamma. Returns -1 when cancellation drives the squared
// criterion negative.
func (d *Shift2) Compute1Weighted(t []float64, n int, gamma float64) float64 {
	c1, c2 := shift2Coeffs1(gamma)

	disc := (c1*bernoulli.B2AtZero - c2*bernoulli.B4AtZero) / float64(n)

	sum := 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			h := t[i] - t[j]
			if h < 0.0 {
				h += 1.0
			}
			sum += c1*bernoulli.Poly2(h) - c2*bernoulli.Poly4(h)
		}
	}

	disc += 2.0 * sum / (float64(n) * float64(n))

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}

func shift2Coeffs(gamma []float64, s int) (c1, c2 []float64) {
	c1 = make([]float64, s)
	c2 = make([]float64, s)
	for r := 0; r < s; r++ {
		c1[r], c2[r] = shift2Coeffs1(gamma[r])
	}

	return c1, c2
}

func shift2Coeffs1(gamma float64) (c1, c2 float64) {
	v := gamma * gamma
	c1 = 0.5 * v
	v = v * v
	c2 = v / 12.0

	return c1, c2
}
