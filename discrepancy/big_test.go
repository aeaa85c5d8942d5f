package discrepancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigShiftBaker1Lattice_MatchesFloat64(t *testing.T) {
	// At moderate n the float64 lattice kernel has not lost precision
	// yet, so both implementations must agree closely.
	tests := []struct {
		name  string
		n     int
		a     []int
		s     int
		gamma []float64
	}{
		{"Dyadic2D", 32, []int{1, 7}, 2, nil},
		{"Dyadic3D", 32, []int{1, 7, 13}, 3, nil},
		{"Weighted", 32, []int{1, 7}, 2, []float64{1.5, 0.75}},
		{"Prime2D", 101, []int{1, 40}, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.gamma != nil {
				opts = append(opts, WithGamma(tt.gamma))
			}

			mp, err := NewBigShiftBaker1Lattice(tt.n, tt.s, opts...)
			require.NoError(t, err)

			plain, err := NewShiftBaker1Lattice(tt.n, tt.s, opts...)
			require.NoError(t, err)

			points := latticePoints(t, tt.n, tt.a, tt.s)

			want := plain.Compute(points, tt.n, tt.s, plain.Gamma())
			got := mp.ComputeGenerator(tt.a, tt.s)

			require.GreaterOrEqual(t, want, 0.0)
			assert.InDelta(t, want, got, 1e-10)
		})
	}
}

func TestBigShiftBaker1Lattice_GeneratorReducedModN(t *testing.T) {
	d, err := NewBigShiftBaker1Lattice(32, 2)
	require.NoError(t, err)

	want := d.ComputeGenerator([]int{1, 7}, 2)

	assert.Equal(t, want, d.ComputeGenerator([]int{1, 39}, 2))
	assert.Equal(t, want, d.ComputeGenerator([]int{1, -25}, 2))
}

func TestBigShiftBaker1Lattice_Precision(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		d, err := NewBigShiftBaker1Lattice(8, 2)
		require.NoError(t, err)
		assert.Equal(t, uint(DefaultPrecision), d.Precision())
	})

	t.Run("Custom", func(t *testing.T) {
		d, err := NewBigShiftBaker1Lattice(8, 2, WithPrecision(256))
		require.NoError(t, err)
		assert.Equal(t, uint(256), d.Precision())
	})

	t.Run("TooLow", func(t *testing.T) {
		_, err := NewBigShiftBaker1Lattice(8, 2, WithPrecision(32))
		assert.Error(t, err)
	})
}

func TestBigShiftBaker1Lattice_SetGammaRebuildsTable(t *testing.T) {
	d, err := NewBigShiftBaker1Lattice(32, 2)
	require.NoError(t, err)

	unit := d.ComputeGenerator([]int{1, 7}, 2)

	require.NoError(t, d.SetGamma([]float64{2.0, 0.5}))
	reweighted := d.ComputeGenerator([]int{1, 7}, 2)
	assert.NotEqual(t, unit, reweighted)

	fresh, err := NewBigShiftBaker1Lattice(32, 2, WithGamma([]float64{2.0, 0.5}))
	require.NoError(t, err)
	assert.Equal(t, fresh.ComputeGenerator([]int{1, 7}, 2), reweighted)
}

func TestBigShiftBaker1Lattice_SetPointsUnsupported(t *testing.T) {
	d, err := NewBigShiftBaker1Lattice(8, 2)
	require.NoError(t, err)

	assert.Error(t, d.SetPoints(randomPoints(8, 2, 1), 8, 2))
}
