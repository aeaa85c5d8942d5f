package discrepancy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The lattice kernels collapse the O(n²) pair sum of their general
// counterparts into one pass over the nodes. For a genuine rank-1
// lattice both must produce the same value.
func TestShiftLattice_MatchesGeneralKernel(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		a     []int
		s     int
		gamma []float64
		delta float64
	}{
		// Powers of two keep every coordinate exactly representable.
		{"Dyadic2D", 16, []int{1, 5}, 2, []float64{1, 1}, 1e-12},
		{"Dyadic2DWeighted", 16, []int{1, 5}, 2, []float64{1.5, 0.8}, 1e-12},
		{"Prime3D", 17, []int{1, 7, 13}, 3, []float64{1, 1, 1}, 1e-10},
		{"Prime3DWeighted", 17, []int{1, 7, 13}, 3, []float64{1.5, 0.8, 1.1}, 1e-10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := latticePoints(t, tt.n, tt.a, tt.s)

			pairs := []struct {
				name    string
				lattice Kernel
				general Kernel
			}{
				{"Shift1", mustKernel(NewShift1Lattice(tt.n, tt.s)), mustKernel(NewShift1(tt.n, tt.s))},
				{"Shift2", mustKernel(NewShift2Lattice(tt.n, tt.s)), mustKernel(NewShift2(tt.n, tt.s))},
				{"ShiftBaker1", mustKernel(NewShiftBaker1Lattice(tt.n, tt.s)), mustKernel(NewShiftBaker1(tt.n, tt.s))},
			}

			for _, p := range pairs {
				t.Run(p.name, func(t *testing.T) {
					fast := p.lattice.Compute(points, tt.n, tt.s, tt.gamma)
					slow := p.general.Compute(points, tt.n, tt.s, tt.gamma)

					require.GreaterOrEqual(t, fast, 0.0)
					assert.InDelta(t, slow, fast, tt.delta)
				})
			}
		})
	}
}

func TestShift1Lattice_FullLattice1D(t *testing.T) {
	// For the nodes {i/n} the Bernoulli multiplication theorem gives
	// the criterion in closed form: 1/(n*sqrt(6)).
	for _, n := range []int{4, 8, 16} {
		k, err := NewShift1Lattice(n, 1)
		require.NoError(t, err)

		t1 := make([]float64, n)
		for i := range t1 {
			t1[i] = float64(i) / float64(n)
		}

		assert.InDelta(t, 1.0/(float64(n)*math.Sqrt(6.0)), k.Compute1(t1, n), 1e-14)
	}
}

func TestShift1Lattice_Compute1WeightedScales(t *testing.T) {
	const n = 8

	k, err := NewShift1Lattice(n, 1)
	require.NoError(t, err)

	t1 := make([]float64, n)
	for i := range t1 {
		t1[i] = float64(i) / n
	}

	assert.InDelta(t, 2.0*k.Compute1(t1, n), k.Compute1Weighted(t1, n, 2.0), 1e-15)
}

// Feeding points that are not a lattice node set can push the collapsed
// sum negative; the kernels then report the sentinel instead of NaN.
func TestShiftLattice_NonLatticeSentinels(t *testing.T) {
	half := [][]float64{{0.5}, {0.5}}

	t.Run("Shift1Compute", func(t *testing.T) {
		k, err := NewShift1Lattice(2, 1)
		require.NoError(t, err)

		assert.Equal(t, -1.0, k.Compute(half, 2, 1, []float64{1}))
	})

	t.Run("Shift1Compute1", func(t *testing.T) {
		k, err := NewShift1Lattice(1, 1)
		require.NoError(t, err)

		assert.Equal(t, -1.0, k.Compute1([]float64{0.5}, 1))
	})

	t.Run("ShiftBaker1Compute1", func(t *testing.T) {
		k, err := NewShiftBaker1Lattice(1, 1)
		require.NoError(t, err)

		assert.Equal(t, -1.0, k.Compute1([]float64{0.5}, 1))
	})

	t.Run("Shift2Compute1ClampsToZero", func(t *testing.T) {
		k, err := NewShift2Lattice(1, 1)
		require.NoError(t, err)

		assert.Equal(t, 0.0, k.Compute1([]float64{0.5}, 1))
	})
}
