package discrepancy

import (
	"errors"
	"fmt"
	"math"
)

// BigShiftBaker1Lattice evaluates the ShiftBaker1 criterion for rank-1
// lattices in multi-precision arithmetic. The float64 lattice kernels
// average n products that are all close to 1, so for large n the
// subtraction of 1 cancels every significant digit; this kernel keeps
// enough mantissa bits for the difference to survive.
//
// It works directly on generator vectors and has no point-matrix form:
// coordinates of a rank-1 lattice are i*a[r]/n mod 1, so the kernel term
// for every abscissa i/n is precomputed once at construction and
// evaluations become table lookups.
type BigShiftBaker1Lattice struct {
	Params

	prec  uint
	baker *bigBaker
}

// NewBigShiftBaker1Lattice creates a multi-precision ShiftBaker1 lattice
// criterion sized for n points in s dimensions. The precision defaults
// to DefaultPrecision bits and can be set with WithPrecision; values
// below MinPrecision are rejected. Construction precomputes an n×s
// factor table.
func NewBigShiftBaker1Lattice(n, s int, opts ...Option) (*BigShiftBaker1Lattice, error) {
	o := applyOptions(opts)

	if o.prec < MinPrecision {
		return nil, fmt.Errorf("discrepancy: precision must be at least %d bits, got %d", MinPrecision, o.prec)
	}

	p, err := newParams(n, s, s, o)
	if err != nil {
		return nil, err
	}

	return &BigShiftBaker1Lattice{
		Params: p,
		prec:   o.prec,
		baker:  newBigBaker(n, s, p.gamma, o.prec),
	}, nil
}

// Name returns the kernel identifier.
func (d *BigShiftBaker1Lattice) Name() string { return "BigShiftBaker1Lattice" }

// Precision returns the mantissa size in bits.
func (d *BigShiftBaker1Lattice) Precision() uint { return d.prec }

// SetGamma replaces the coordinate weights and rebuilds the factor
// table.
func (d *BigShiftBaker1Lattice) SetGamma(gamma []float64) error {
	if err := d.Params.SetGamma(gamma); err != nil {
		return err
	}

	d.baker = newBigBaker(d.n, d.s, d.gamma, d.prec)

	return nil
}

// SetPoints is not supported: the kernel evaluates lattices from their
// generator vector only.
func (d *BigShiftBaker1Lattice) SetPoints([][]float64, int, int) error {
	return errors.New("discrepancy: BigShiftBaker1Lattice has no point-matrix form")
}

// ComputeGenerator returns the criterion for the rank-1 lattice with
// generator a, using the first s components. Components are reduced
// modulo n. The result is narrowed to float64 at the end; -1 is returned
// when even multi-precision arithmetic came out negative.
func (d *BigShiftBaker1Lattice) ComputeGenerator(a []int, s int) float64 {
	n := d.n
	b := bf{prec: d.prec}

	aa := make([]int, s)
	for r := 0; r < s; r++ {
		aa[r] = a[r] % n
		if aa[r] < 0 {
			aa[r] += n
		}
	}

	one := b.int(1)
	sum := b.new()
	prod := b.new()
	tem := b.new()

	for i := 0; i < n; i++ {
		prod.Set(one)
		for r := 0; r < s; r++ {
			idx := i * aa[r] % n
			tem.Sub(one, d.baker.factor[idx][r])
			prod.Mul(prod, tem)
		}
		sum.Add(sum, prod)
	}

	sum.Quo(sum, b.int(int64(n)))
	sum.Sub(sum, one)

	disc, _ := sum.Float64()
	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}
