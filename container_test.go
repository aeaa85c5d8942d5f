package qmcgo

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/qmcgo/discrepancy"
)

// fixedKernel reports the same value for every point set.
type fixedKernel struct {
	name string
	val  float64
}

func (f fixedKernel) Name() string         { return f.name }
func (f fixedKernel) NumPoints() int       { return 1 }
func (f fixedKernel) Dim() int             { return 1 }
func (f fixedKernel) Points() [][]float64  { return nil }
func (f fixedKernel) Gamma() []float64     { return []float64{1.0} }
func (f fixedKernel) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	return f.val
}

// sizeKernel reports the number of points it was asked to evaluate.
type sizeKernel struct{}

func (sizeKernel) Name() string        { return "Size" }
func (sizeKernel) NumPoints() int      { return 1 }
func (sizeKernel) Dim() int            { return 1 }
func (sizeKernel) Points() [][]float64 { return nil }
func (sizeKernel) Gamma() []float64    { return []float64{1.0} }
func (sizeKernel) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	return float64(n)
}

func testPoints() [][]float64 {
	return [][]float64{
		{0.10, 0.30},
		{0.60, 0.80},
		{0.45, 0.20},
		{0.90, 0.55},
	}
}

func TestNewContainer_Validation(t *testing.T) {
	t.Run("no kernels", func(t *testing.T) {
		_, err := NewContainer()
		require.ErrorIs(t, err, ErrNoKernels)
	})

	t.Run("nil kernel", func(t *testing.T) {
		_, err := NewContainer(fixedKernel{name: "F", val: 1.0}, nil)
		require.Error(t, err)
	})
}

func TestContainer_InitValidation(t *testing.T) {
	c, err := NewContainer(fixedKernel{name: "F", val: 1.0})
	require.NoError(t, err)

	require.Error(t, c.Init(0))
	require.Error(t, c.Init(-3))

	require.NoError(t, c.Init(5))
	assert.Equal(t, 5, c.Size())
}

func TestContainer_ComputeMatchesKernels(t *testing.T) {
	pts := testPoints()
	n, s := len(pts), 2

	k1, err := discrepancy.NewL2Star(n, s)
	require.NoError(t, err)
	k2, err := discrepancy.NewShift1(n, s)
	require.NoError(t, err)

	c, err := NewContainer(k1, k2)
	require.NoError(t, err)
	require.NoError(t, c.Init(3))

	c.Compute(1, pts, n, s)

	assert.InDelta(t, k1.Compute(pts, n, s, k1.Gamma()), c.Values(0)[1], 1e-15)
	assert.InDelta(t, k2.Compute(pts, n, s, k2.Gamma()), c.Values(1)[1], 1e-15)

	// Untouched indices stay zero.
	assert.Equal(t, 0.0, c.Values(0)[0])
	assert.Equal(t, 0.0, c.Values(0)[2])
}

func TestContainer_Compute1(t *testing.T) {
	// Sorted, as the one-dimensional star discrepancy requires.
	tvals := []float64{0.05, 0.35, 0.55, 0.90}
	n := len(tvals)

	k1, err := discrepancy.NewL2Star(n, 1)
	require.NoError(t, err)

	// PAlpha has no dedicated one-dimensional form and goes through
	// the general path.
	k2, err := discrepancy.NewPAlpha(n, 1, 2)
	require.NoError(t, err)

	c, err := NewContainer(k1, k2)
	require.NoError(t, err)
	require.NoError(t, c.Init(1))

	c.Compute1(0, tvals, n)

	assert.InDelta(t, k1.Compute1(tvals, n), c.Values(0)[0], 1e-15)

	col := make([][]float64, n)
	for i := range col {
		col[i] = tvals[i : i+1]
	}
	assert.InDelta(t, k2.Compute(col, n, 1, k2.Gamma()), c.Values(1)[0], 1e-15)
}

func TestContainer_AddScaleAverages(t *testing.T) {
	ptsA := testPoints()
	ptsB := [][]float64{
		{0.25, 0.75},
		{0.50, 0.15},
		{0.85, 0.40},
		{0.05, 0.95},
	}
	n, s := 4, 2

	k, err := discrepancy.NewL2Symmetric(n, s)
	require.NoError(t, err)

	c, err := NewContainer(k)
	require.NoError(t, err)
	require.NoError(t, c.Init(1))

	c.Add(0, ptsA, n, s)
	c.Add(0, ptsB, n, s)
	c.Scale(0, 0.5)

	want := 0.5 * (k.Compute(ptsA, n, s, k.Gamma()) + k.Compute(ptsB, n, s, k.Gamma()))
	assert.InDelta(t, want, c.Values(0)[0], 1e-15)
}

func TestContainer_AddSquare(t *testing.T) {
	pts := testPoints()
	n, s := len(pts), 2

	k, err := discrepancy.NewL2Unanchored(n, s)
	require.NoError(t, err)

	c, err := NewContainer(k)
	require.NoError(t, err)
	require.NoError(t, c.Init(1))

	c.AddSquare(0, pts, n, s)
	c.AddSquare(0, pts, n, s)

	d := k.Compute(pts, n, s, k.Gamma())
	assert.InDelta(t, 2*d*d, c.Values(0)[0], 1e-15)
}

func TestContainer_Add1AndAddSquare1(t *testing.T) {
	tvals := []float64{0.2, 0.4, 0.7}
	n := len(tvals)

	k, err := discrepancy.NewShift1(n, 1)
	require.NoError(t, err)

	c, err := NewContainer(k)
	require.NoError(t, err)
	require.NoError(t, c.Init(2))

	c.Add1(0, tvals, n)
	c.AddSquare1(1, tvals, n)

	d := k.Compute1(tvals, n)
	assert.InDelta(t, d, c.Values(0)[0], 1e-15)
	assert.InDelta(t, d*d, c.Values(0)[1], 1e-15)
}

func TestContainer_Log2SquareAndScaleAll(t *testing.T) {
	c, err := NewContainer(fixedKernel{name: "Four", val: 4.0})
	require.NoError(t, err)
	require.NoError(t, c.Init(2))

	c.Compute(0, nil, 1, 1)
	c.Compute(1, nil, 1, 1)

	c.Log2(0)
	assert.Equal(t, 2.0, c.Values(0)[0])

	c.Square(1)
	assert.Equal(t, 16.0, c.Values(0)[1])

	c.ScaleAll(0.5)
	assert.Equal(t, 1.0, c.Values(0)[0])
	assert.Equal(t, 8.0, c.Values(0)[1])
}

func TestContainer_ZeroInfinite(t *testing.T) {
	c, err := NewContainer(fixedKernel{name: "Zero", val: 0.0})
	require.NoError(t, err)
	require.NoError(t, c.Init(1))

	c.Compute(0, nil, 1, 1)
	c.Log2(0)
	require.True(t, math.IsInf(c.Values(0)[0], -1))

	c.ZeroInfinite()
	assert.Equal(t, 0.0, c.Values(0)[0])
}

func TestContainer_ResetAll(t *testing.T) {
	c, err := NewContainer(fixedKernel{name: "F", val: 3.0})
	require.NoError(t, err)
	require.NoError(t, c.Init(3))

	for i := 0; i < 3; i++ {
		c.Compute(i, nil, 1, 1)
	}
	c.ResetAll()

	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, c.Values(0)[i])
	}
}

func TestContainer_RegressionSlopes(t *testing.T) {
	c, err := NewContainer(sizeKernel{})
	require.NoError(t, err)
	require.NoError(t, c.Init(4))

	// Series y = 2x + 1 over x = 0..3.
	for i := 0; i < 4; i++ {
		c.SetParam(i, float64(i))
		c.Compute(i, nil, 2*i+1, 1)
	}

	slopes := c.RegressionSlopes()
	require.Len(t, slopes, 1)
	assert.InDelta(t, 2.0, slopes[0], 1e-12)
}

func TestContainer_SetParamAndParams(t *testing.T) {
	c, err := NewContainer(fixedKernel{name: "F", val: 1.0})
	require.NoError(t, err)
	require.NoError(t, c.Init(3))

	c.SetParam(0, 16)
	c.SetParam(1, 32)
	c.SetParam(2, 64)

	assert.Equal(t, []float64{16, 32, 64}, c.Params())

	// Params returns a copy.
	c.Params()[0] = -1
	assert.Equal(t, 16.0, c.Params()[0])
}

func TestContainer_String(t *testing.T) {
	c, err := NewContainer(fixedKernel{name: "FixedKernel", val: 2.5})
	require.NoError(t, err)
	require.NoError(t, c.InitLabeled(2, "sweep", "log2(n)", "D"))

	c.SetParam(0, 4)
	c.SetParam(1, 5)
	c.Compute(0, nil, 1, 1)
	c.Compute(1, nil, 1, 1)

	out := c.String()
	assert.True(t, strings.Contains(out, "sweep"))
	assert.True(t, strings.Contains(out, "log2(n)"))
	assert.True(t, strings.Contains(out, "FixedKernel"))
	assert.True(t, strings.Contains(out, "2.5"))
}
