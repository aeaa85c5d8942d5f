package discrepancy

import (
	"math"

	"github.com/hupe1980/qmcgo/internal/bernoulli"
)

// ShiftBaker1Lattice evaluates the ShiftBaker1 criterion for the node
// set of a rank-1 lattice in a single pass over the points, using the
// simplified two-branch form of the kernel term. The input must be a
// rank-1 lattice node set; for arbitrary points the result is
// meaningless.
//
// Cancellation grows with n; past a few hundred thousand points prefer
// BigShiftBaker1Lattice.
type ShiftBaker1Lattice struct {
	Params
}

// NewShiftBaker1Lattice creates a ShiftBaker1 lattice criterion sized
// for n points in s dimensions.
func NewShiftBaker1Lattice(n, s int, opts ...Option) (*ShiftBaker1Lattice, error) {
	p, err := newParams(n, s, s, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &ShiftBaker1Lattice{Params: p}, nil
}

// Name returns the kernel identifier.
func (d *ShiftBaker1Lattice) Name() string { return "ShiftBaker1Lattice" }

// Compute returns the criterion for the first n lattice nodes of points
// in dimension s with coordinate weights gamma. Assumes points has at
// least n rows of s coordinates each and gamma at least s positive
// entries (caller's responsibility).
//
// Returns -1 when all precision is lost and the squared criterion comes
// out negative.
func (d *ShiftBaker1Lattice) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	c1, c2, c3 := bakerCoeffs(gamma, s)

	sum := 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for r := 0; r < s; r++ {
			prod *= 1.0 - bernoulli.BakerFactor(points[i][r], c1[r], c2[r], c3[r])
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
func (d *ShiftBaker1Lattice) Compute1(t []float64, n int) float64 {
	return d.Compute1Weighted(t, n, 1.0)
}

// Compute1Weighted returns the criterion for the n nodes of a
// one-dimensional lattice with weight gamma. Returns -1 when
// cancellation drives the squared criterion negative.
func (d *ShiftBaker1Lattice) Compute1Weighted(t []float64, n int, gamma float64) float64 {
	c1, c2, c3 := bakerCoeffs1(gamma)

	sum := 0.0
	for i := 0; i < n; i++ {
		sum -= bakerPairTerm(t[i], c1, c2, c3)
	}

	disc := sum / float64(n)

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}
