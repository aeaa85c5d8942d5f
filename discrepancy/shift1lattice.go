package discrepancy

import (
	"math"

	"github.com/hupe1980/qmcgo/internal/bernoulli"
)

// Shift1Lattice evaluates the Shift1 criterion for the node set of a
// rank-1 lattice. Because the pairwise differences of lattice nodes,
// taken mod 1, reproduce the node set n times over, the O(n²) pair sum
// collapses to a single pass over the points:
//
//	D² = (1/n) Σ_i Π_r (1 + gamma[r]² B2(x[i][r])) - 1.
//
// The input must be a rank-1 lattice node set; for arbitrary points the
// result is meaningless.
type Shift1Lattice struct {
	Params
}

// NewShift1Lattice creates a Shift1 lattice criterion sized for n points
// in s dimensions.
func NewShift1Lattice(n, s int, opts ...Option) (*Shift1Lattice, error) {
	p, err := newParams(n, s, s, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Shift1Lattice{Params: p}, nil
}

// Name returns the kernel identifier.
func (d *Shift1Lattice) Name() string { return "Shift1Lattice" }

// Compute returns the criterion for the first n lattice nodes of points
// in dimension s with coordinate weights gamma. Assumes points has at
// least n rows of s coordinates each and gamma at least s positive
// entries (caller's responsibility).
//
// Returns -1 when cancellation drives the squared criterion negative.
func (d *Shift1Lattice) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	c1 := shift1Coeffs(gamma, s)

	sum := 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for r := 0; r < s; r++ {
			prod *= 1.0 + c1[r]*bernoulli.Poly2(points[i][r])
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
// lattice with weight 1. Returns -1 when cancellation drives the squared
// criterion negative.
func (d *Shift1Lattice) Compute1(t []float64, n int) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += bernoulli.Poly2(t[i])
	}

	disc := sum / float64(n)

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}

// Compute1Weighted returns the criterion for the n nodes of a
// one-dimensional lattice with weight gamma. The weight factors out of
// the kernel, so the result is gamma times the unweighted criterion; the
// -1 sentinel is passed through unscaled.
func (d *Shift1Lattice) Compute1Weighted(t []float64, n int, gamma float64) float64 {
	disc := d.Compute1(t, n)
	if disc < 0.0 {
		return disc
	}

	return gamma * disc
}
