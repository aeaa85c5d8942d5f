package discrepancy

import (
	"math"

	"github.com/hupe1980/qmcgo/internal/bernoulli"
)

// Shift2Lattice evaluates the Shift2 criterion for the node set of a
// rank-1 lattice in a single pass over the points. The input must be a
// rank-1 lattice node set; for arbitrary points the result is
// meaningless.
type Shift2Lattice struct {
	Params
}

// NewShift2Lattice creates a Shift2 lattice criterion sized for n points
// in s dimensions.
func NewShift2Lattice(n, s int, opts ...Option) (*Shift2Lattice, error) {
	p, err := newParams(n, s, s, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Shift2Lattice{Params: p}, nil
}

// Name returns the kernel identifier.
func (d *Shift2Lattice) Name() string { return "Shift2Lattice" }

// Compute returns the criterion for the first n lattice nodes of points
// in dimension s with coordinate weights gamma. Assumes points has at
// least n rows of s coordinates each and gamma at least s positive
// entries (caller's responsibility).
//
// Returns -1 when cancellation drives the squared criterion negative.
func (d *Shift2Lattice) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	c1, c2 := shift2Coeffs(gamma, s)

	sum := 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for r := 0; r < s; r++ {
			u := points[i][r]
			prod *= 1.0 + c1[r]*bernoulli.Poly2(u) - c2[r]*bernoulli.Poly4(u)
		}
		sum += prod
	}

	disc := sum/float64(n) - 1.0

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}

// Compute1 returns the criterion for the n nodes of a one-dimensional
// lattice with weight 1.
func (d *Shift2Lattice) Compute1(t []float64, n int) float64 {
	return d.Compute1Weighted(t, n, 1.0)
}

// Compute1Weighted returns the criterion for the n nodes of a
// one-dimensional lattice with weight gamma. Unlike the other shift
// criteria this form clamps to 0, not -1, when the value is not
// positive.
func (d *Shift2Lattice) Compute1Weighted(t []float64, n int, gamma float64) float64 {
	c1, c2 := shift2Coeffs1(gamma)

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += c1*bernoulli.Poly2(t[i]) - c2*bernoulli.Poly4(t[i])
	}

	disc := sum / float64(n)

	if disc <= 0.0 {
		return 0.0
	}

	return math.Sqrt(disc)
}
