package discrepancy

import (
	"math"

	"github.com/hupe1980/qmcgo/internal/bernoulli"
)

// ShiftBaker1 is the order-1 shift-invariant criterion for rules to
// which the baker's transformation x -> 1 - |2x - 1| is applied after
// the random shift. The folding doubles the convergence order for smooth
// integrands; the kernel combines Bernoulli polynomials of degrees 4 and
// 6 evaluated at the difference u = {x - y} and at its half-shifted copy
// {u - 1/2}.
type ShiftBaker1 struct {
	Params
}

// NewShiftBaker1 creates a ShiftBaker1 criterion sized for n points in s
// dimensions.
func NewShiftBaker1(n, s int, opts ...Option) (*ShiftBaker1, error) {
	p, err := newParams(n, s, s, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &ShiftBaker1{Params: p}, nil
}

// Name returns the kernel identifier.
func (d *ShiftBaker1) Name() string { return "ShiftBaker1" }

// Compute returns the criterion for the first n points of points in
// dimension s with coordinate weights gamma. Assumes points has at least
// n rows of s coordinates each and gamma at least s positive entries
// (caller's responsibility).
//
// Returns -1 when cancellation drives the squared criterion negative.
func (d *ShiftBaker1) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	c1, c2, c3 := bakerCoeffs(gamma, s)

	prod := 1.0
	for r := 0; r < s; r++ {
		prod *= 1.0 - bakerDiagTerm(c1[r], c2[r], c3[r])
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
				prod *= 1.0 - bakerPairTerm(u, c1[r], c2[r], c3[r])
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
func (d *ShiftBaker1) Compute1(t []float64, n int) float64 {
	return d.Compute1Weighted(t, n, 1.0)
}

// Compute1Weighted returns the criterion for the first n entries of t
// with weight gamma. Returns -1 when cancellation drives the squared
// criterion negative.
func (d *ShiftBaker1) Compute1Weighted(t []float64, n int, gamma float64) float64 {
	c1, c2, c3 := bakerCoeffs1(gamma)

	disc := -bakerDiagTerm(c1, c2, c3) / float64(n)

	sum := 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			h := t[i] - t[j]
			if h < 0.0 {
				h += 1.0
			}
			sum -= bakerPairTerm(h, c1, c2, c3)
		}
	}

	disc += 2.0 * sum / (float64(n) * float64(n))

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}

func bakerCoeffs(gamma []float64, s int) (c1, c2, c3 []float64) {
	c1 = make([]float64, s)
	c2 = make([]float64, s)
	c3 = make([]float64, s)
	for r := 0; r < s; r++ {
		c1[r], c2[r], c3[r] = bakerCoeffs1(gamma[r])
	}

	return c1, c2, c3
}

func bakerCoeffs1(gamma float64) (c1, c2, c3 float64) {
	v := gamma * gamma
	c1 = v * 4.0 / 3.0
	v = v * v
	c2 = v / 9.0
	c3 = v * 16.0 / 45.0

	return c1, c2, c3
}

// bakerDiagTerm is the kernel term at u = 0, where B4 and B6 take their
// known values at 0 and 1/2.
func bakerDiagTerm(c1, c2, c3 float64) float64 {
	return c1*(bernoulli.B4AtZero-bernoulli.B4AtHalf) +
		c2*(7.0*bernoulli.B4AtZero-2.0*bernoulli.B4AtHalf) +
		c3*(bernoulli.B6AtZero-bernoulli.B6AtHalf)
}

// bakerPairTerm is the kernel term at u, with v the half-shifted copy of
// u. u must already lie in [0, 1).
func bakerPairTerm(u, c1, c2, c3 float64) float64 {
	v := u - 0.5
	if v < 0.0 {
		v += 1.0
	}

	p4u := bernoulli.Poly4(u)
	p4v := bernoulli.Poly4(v)

	return c1*(p4u-p4v) +
		c2*(7.0*p4u-2.0*p4v) +
		c3*(bernoulli.Poly6(u)-bernoulli.Poly6(v))
}
