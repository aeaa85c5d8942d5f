package discrepancy

import (
	"fmt"

	"github.com/hupe1980/qmcgo/pointset"
)

// Kernel is the interface shared by all discrepancy kernels. A kernel is
// sized for n points in s dimensions at construction; Compute evaluates
// an arbitrary point matrix against that figure of merit.
type Kernel interface {
	// Name returns a short identifier used in reports and logs.
	Name() string

	// NumPoints returns the number of points the kernel was sized for.
	NumPoints() int

	// Dim returns the dimension the kernel was sized for.
	Dim() int

	// Points returns the bound point matrix, or nil if none was bound.
	Points() [][]float64

	// Gamma returns a copy of the coordinate weights.
	Gamma() []float64

	// Compute evaluates the figure of merit over the first n rows and s
	// columns of points, with coordinate weights gamma. Inputs are not
	// validated (caller's responsibility).
	Compute(points [][]float64, n, s int, gamma []float64) float64
}

// Kernel1D is implemented by kernels that have a dedicated
// one-dimensional form, evaluated directly instead of through the
// general matrix path.
type Kernel1D interface {
	// Compute1 evaluates the figure of merit of the first n entries of
	// t with coordinate weight 1.
	Compute1(t []float64, n int) float64
}

// WeightedKernel1D is implemented by kernels whose one-dimensional form
// accepts a coordinate weight.
type WeightedKernel1D interface {
	Kernel1D

	// Compute1Weighted evaluates the figure of merit of the first n
	// entries of t with coordinate weight gamma.
	Compute1Weighted(t []float64, n int, gamma float64) float64
}

// GeneratorKernel is implemented by kernels that evaluate a rank-1
// lattice directly from its generator vector, without materializing the
// points.
type GeneratorKernel interface {
	// ComputeGenerator evaluates the lattice with generator a, using
	// the first s components of a.
	ComputeGenerator(a []int, s int) float64
}

type options struct {
	points [][]float64
	gamma  []float64
	prec   uint
}

// Option configures a kernel constructor.
type Option func(*options)

// WithPoints binds a point matrix to the kernel. The matrix must hold at
// least as many rows and columns as the kernel is sized for.
func WithPoints(points [][]float64) Option {
	return func(o *options) {
		o.points = points
	}
}

// WithPointSet materializes ps and binds its points to the kernel.
func WithPointSet(ps pointset.PointSet) Option {
	return func(o *options) {
		o.points = pointset.Matrix(ps)
	}
}

// WithGamma sets the coordinate weights. Weights must be strictly
// positive. Most kernels take one weight per coordinate; PAlpha takes an
// extra leading weight that scales the whole criterion.
func WithGamma(gamma []float64) Option {
	return func(o *options) {
		o.gamma = gamma
	}
}

// WithPrecision sets the mantissa size, in bits, of multi-precision
// kernels. Kernels computing in float64 ignore it.
func WithPrecision(bits uint) Option {
	return func(o *options) {
		o.prec = bits
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		prec: DefaultPrecision,
	}

	for _, fn := range opts {
		fn(o)
	}

	return o
}

// Params holds the state every kernel carries: an optional bound point
// matrix, the size and dimension the kernel was sized for, and the
// coordinate weights.
type Params struct {
	points [][]float64
	n      int
	s      int
	gamma  []float64
}

// newParams validates the common constructor arguments. nweights is the
// number of weights the kernel consumes, usually s.
func newParams(n, s, nweights int, o *options) (Params, error) {
	if n < 1 {
		return Params{}, fmt.Errorf("discrepancy: number of points must be positive, got %d", n)
	}

	if s < 1 {
		return Params{}, fmt.Errorf("discrepancy: dimension must be positive, got %d", s)
	}

	if o.points != nil {
		if err := checkPoints(o.points, n, s); err != nil {
			return Params{}, err
		}
	}

	gamma := onesWeights(nweights)
	if o.gamma != nil {
		if err := checkWeights(o.gamma, nweights); err != nil {
			return Params{}, err
		}
		copy(gamma, o.gamma)
	}

	return Params{points: o.points, n: n, s: s, gamma: gamma}, nil
}

// NumPoints returns the number of points the kernel was sized for.
func (p *Params) NumPoints() int { return p.n }

// Dim returns the dimension the kernel was sized for.
func (p *Params) Dim() int { return p.s }

// Points returns the bound point matrix, or nil if none was bound. The
// matrix is shared, not copied.
func (p *Params) Points() [][]float64 { return p.points }

// Gamma returns a copy of the coordinate weights.
func (p *Params) Gamma() []float64 {
	out := make([]float64, len(p.gamma))
	copy(out, p.gamma)
	return out
}

// SetGamma replaces the coordinate weights. The slice must hold as many
// strictly positive entries as the kernel consumes.
func (p *Params) SetGamma(gamma []float64) error {
	if err := checkWeights(gamma, len(p.gamma)); err != nil {
		return err
	}
	copy(p.gamma, gamma)
	return nil
}

// SetPoints replaces the bound point matrix and the size the kernel is
// sized for, and resets all weights to 1.
func (p *Params) SetPoints(points [][]float64, n, s int) error {
	if n < 1 {
		return fmt.Errorf("discrepancy: number of points must be positive, got %d", n)
	}

	if s < 1 {
		return fmt.Errorf("discrepancy: dimension must be positive, got %d", s)
	}

	if err := checkPoints(points, n, s); err != nil {
		return err
	}

	// PAlpha carries one weight more than the dimension; keep the extra.
	extra := len(p.gamma) - p.s

	p.points = points
	p.n = n
	p.s = s
	p.gamma = onesWeights(s + extra)

	return nil
}

func checkPoints(points [][]float64, n, s int) error {
	if len(points) < n {
		return fmt.Errorf("discrepancy: point matrix has %d rows, need %d", len(points), n)
	}

	for i := 0; i < n; i++ {
		if len(points[i]) < s {
			return fmt.Errorf("discrepancy: point %d has %d coordinates, need %d", i, len(points[i]), s)
		}
	}

	return nil
}

func checkWeights(gamma []float64, need int) error {
	if len(gamma) < need {
		return fmt.Errorf("discrepancy: got %d weights, need %d", len(gamma), need)
	}

	for i := 0; i < need; i++ {
		if gamma[i] <= 0.0 {
			return fmt.Errorf("discrepancy: weight %d must be positive, got %g", i, gamma[i])
		}
	}

	return nil
}

func onesWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0
	}

	return w
}

// Bound evaluates k over the point matrix and weights it was constructed
// with. The kernel must have been constructed with WithPoints or
// WithPointSet (caller's responsibility).
func Bound(k Kernel) float64 {
	return k.Compute(k.Points(), k.NumPoints(), k.Dim(), k.Gamma())
}

// ComputeSet evaluates k over every point of ps. A nil gamma means the
// kernel's own weights. One-dimensional point sets are routed to the
// dedicated one-dimensional form when the kernel has one.
func ComputeSet(k Kernel, ps pointset.PointSet, gamma []float64) float64 {
	if gamma == nil {
		gamma = k.Gamma()
	}

	n := ps.NumPoints()
	dim := ps.Dim()

	if dim == 1 {
		switch k1 := k.(type) {
		case WeightedKernel1D:
			return k1.Compute1Weighted(pointset.Column(ps, 0), n, gamma[0])
		case Kernel1D:
			return k1.Compute1(pointset.Column(ps, 0), n)
		}
	}

	return k.Compute(pointset.Matrix(ps), n, dim, gamma)
}
