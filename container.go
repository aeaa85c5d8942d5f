package qmcgo

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/qmcgo/discrepancy"
)

// Container computes, stores and post-processes the values of several
// discrepancy kernels side by side. Each call to Compute or Add fills
// one index of every kernel series; SetParam assigns a parameter value
// (number of points, dimension, sample index) to that index, so the
// series can be rendered as functions of the parameter and their
// regression slopes estimated.
//
// Index arguments follow Go slice semantics: an index outside
// [0, Size()) panics. All computing methods require a prior Init or
// InitLabeled.
type Container struct {
	kernels []discrepancy.Kernel
	params  []float64
	values  [][]float64
	size    int

	title  string
	xLabel string
	yLabel string
}

// NewContainer creates a Container for the given kernels.
func NewContainer(kernels ...discrepancy.Kernel) (*Container, error) {
	if len(kernels) == 0 {
		return nil, ErrNoKernels
	}

	for j, k := range kernels {
		if k == nil {
			return nil, fmt.Errorf("qmcgo: kernel %d is nil", j)
		}
	}

	return &Container{kernels: kernels}, nil
}

// Init sizes the container for n parameter values, resets every series
// to 0 and applies the default labels.
func (c *Container) Init(n int) error {
	return c.InitLabeled(n, "", "Parameter", "Discrepancy")
}

// InitLabeled sizes the container for n parameter values, resets every
// series to 0 and sets the title and axis labels used by String.
func (c *Container) InitLabeled(n int, title, xLabel, yLabel string) error {
	if n < 1 {
		return fmt.Errorf("qmcgo: container size must be positive, got %d", n)
	}

	c.size = n
	c.title = title
	c.xLabel = xLabel
	c.yLabel = yLabel

	c.params = make([]float64, n)
	c.values = make([][]float64, len(c.kernels))
	for j := range c.values {
		c.values[j] = make([]float64, n)
	}

	return nil
}

// Size returns the number of parameter values the container was sized
// for, 0 before Init.
func (c *Container) Size() int { return c.size }

// Reset sets the values of every kernel series at index i to 0.
func (c *Container) Reset(i int) {
	for j := range c.values {
		c.values[j][i] = 0.0
	}
}

// ResetAll calls Reset for all indices.
func (c *Container) ResetAll() {
	for i := 0; i < c.size; i++ {
		c.Reset(i)
	}
}

// Compute evaluates every kernel over the first n rows and s columns
// of points and sets the values at index i.
func (c *Container) Compute(i int, points [][]float64, n, s int) {
	for j := range c.kernels {
		c.values[j][i] = c.kernelValue(j, points, n, s)
	}
}

// Compute1 evaluates every kernel over the first n entries of t and
// sets the values at index i.
func (c *Container) Compute1(i int, t []float64, n int) {
	for j := range c.kernels {
		c.values[j][i] = c.kernelValue1(j, t, n)
	}
}

// Add evaluates every kernel over the first n rows and s columns of
// points and adds the values at index i. Together with Scale this
// averages a discrepancy over several point sets.
func (c *Container) Add(i int, points [][]float64, n, s int) {
	for j := range c.kernels {
		c.values[j][i] += c.kernelValue(j, points, n, s)
	}
}

// Add1 evaluates every kernel over the first n entries of t and adds
// the values at index i.
func (c *Container) Add1(i int, t []float64, n int) {
	for j := range c.kernels {
		c.values[j][i] += c.kernelValue1(j, t, n)
	}
}

// AddSquare evaluates every kernel over the first n rows and s columns
// of points and adds the squared values at index i. Together with
// Scale this averages a square discrepancy over several point sets.
func (c *Container) AddSquare(i int, points [][]float64, n, s int) {
	for j := range c.kernels {
		d := c.kernelValue(j, points, n, s)
		c.values[j][i] += d * d
	}
}

// AddSquare1 evaluates every kernel over the first n entries of t and
// adds the squared values at index i.
func (c *Container) AddSquare1(i int, t []float64, n int) {
	for j := range c.kernels {
		d := c.kernelValue1(j, t, n)
		c.values[j][i] += d * d
	}
}

// Scale multiplies the values of every kernel series at index i by f.
func (c *Container) Scale(i int, f float64) {
	for j := range c.values {
		c.values[j][i] *= f
	}
}

// ScaleAll calls Scale for all indices.
func (c *Container) ScaleAll(f float64) {
	for i := 0; i < c.size; i++ {
		c.Scale(i, f)
	}
}

// Log2 takes the base-2 logarithm of the values at index i. A zero
// value becomes -Inf; see ZeroInfinite.
func (c *Container) Log2(i int) {
	for j := range c.values {
		c.values[j][i] = math.Log2(c.values[j][i])
	}
}

// Square squares the values at index i.
func (c *Container) Square(i int) {
	for j := range c.values {
		c.values[j][i] *= c.values[j][i]
	}
}

// SetParam sets the parameter value at index i.
func (c *Container) SetParam(i int, v float64) {
	c.params[i] = v
}

// Params returns a copy of the parameter values.
func (c *Container) Params() []float64 {
	out := make([]float64, c.size)
	copy(out, c.params)
	return out
}

// Values returns a copy of the series of kernel j.
func (c *Container) Values(j int) []float64 {
	out := make([]float64, c.size)
	copy(out, c.values[j])
	return out
}

// ZeroInfinite replaces negative-infinite entries, as left by Log2 at
// an index holding a zero value, with 0.
func (c *Container) ZeroInfinite() {
	for j := range c.values {
		for i, v := range c.values[j] {
			if math.IsInf(v, -1) {
				c.values[j][i] = 0.0
			}
		}
	}
}

// RegressionSlopes returns the linear regression slope of each kernel
// series as a function of the parameter. With both axes on a log2
// scale the slope estimates the convergence rate of the kernel.
func (c *Container) RegressionSlopes() []float64 {
	slopes := make([]float64, len(c.kernels))
	for j := range c.kernels {
		_, slopes[j] = stat.LinearRegression(c.params, c.values[j], nil, false)
	}
	return slopes
}

// String returns a table showing the kernel values for the different
// values of the parameter, one kernel per row.
func (c *Container) String() string {
	var sb strings.Builder

	sb.WriteString("\n")
	if c.title != "" {
		sb.WriteString(c.title)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "%35s", c.xLabel)
	for i := 0; i < c.size; i++ {
		fmt.Fprintf(&sb, "%15.6g", c.params[i])
	}
	sb.WriteString("\n")

	for j, k := range c.kernels {
		fmt.Fprintf(&sb, "%15s%20s", c.yLabel, k.Name())
		for i := 0; i < c.size; i++ {
			fmt.Fprintf(&sb, "%15.6g", c.values[j][i])
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// kernelValue evaluates kernel j with its own weights.
func (c *Container) kernelValue(j int, points [][]float64, n, s int) float64 {
	k := c.kernels[j]
	return k.Compute(points, n, s, k.Gamma())
}

// kernelValue1 evaluates the one-dimensional form of kernel j. Kernels
// without a dedicated one-dimensional form are evaluated through the
// general path with an n-by-1 view of t.
func (c *Container) kernelValue1(j int, t []float64, n int) float64 {
	k := c.kernels[j]
	if k1, ok := k.(discrepancy.Kernel1D); ok {
		return k1.Compute1(t, n)
	}

	col := make([][]float64, n)
	for i := 0; i < n; i++ {
		col[i] = t[i : i+1]
	}
	return k.Compute(col, n, 1, k.Gamma())
}
