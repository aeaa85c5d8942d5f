package discrepancy

import "math/big"

const (
	// DefaultPrecision is the mantissa size, in bits, used by
	// multi-precision kernels unless WithPrecision overrides it.
	DefaultPrecision = 128

	// MinPrecision is the smallest accepted mantissa size. Anything
	// below float64 precision would defeat the purpose.
	MinPrecision = 53
)

// bf allocates big floats at a fixed precision.
type bf struct {
	prec uint
}

func (b bf) new() *big.Float {
	return new(big.Float).SetPrec(b.prec)
}

func (b bf) int(v int64) *big.Float {
	return new(big.Float).SetPrec(b.prec).SetInt64(v)
}

// rat returns num/den rounded to the working precision.
func (b bf) rat(num, den int64) *big.Float {
	f := b.int(num)
	return f.Quo(f, b.int(den))
}

// bigBaker holds the precomputed factor table of the baker kernel term
// for every normalized lattice abscissa i/n. Building the table costs
// O(n·s) big-float operations and memory; evaluations then reduce to
// table lookups.
type bigBaker struct {
	prec   uint
	n      int
	s      int
	factor [][]*big.Float // factor[i][r] = kernel term at i/n with weights of coordinate r
}

func newBigBaker(n, s int, gamma []float64, prec uint) *bigBaker {
	b := bf{prec: prec}

	fn := b.int(int64(n))
	u := make([]*big.Float, n)
	for i := range u {
		u[i] = b.int(int64(i))
		u[i].Quo(u[i], fn)
	}

	c1 := make([]*big.Float, s)
	c2 := make([]*big.Float, s)
	c3 := make([]*big.Float, s)
	for r := 0; r < s; r++ {
		g2 := b.new().SetFloat64(gamma[r])
		g2.Mul(g2, g2)
		g4 := b.new().Mul(g2, g2)

		c1[r] = b.new().Mul(g2, b.rat(4, 3))
		c2[r] = b.new().Mul(g4, b.rat(1, 9))
		c3[r] = b.new().Mul(g4, b.rat(16, 45))
	}

	factor := make([][]*big.Float, n)
	for i := 0; i < n; i++ {
		factor[i] = make([]*big.Float, s)
		for r := 0; r < s; r++ {
			factor[i][r] = b.bakerFactor(u[i], c1[r], c2[r], c3[r])
		}
	}

	return &bigBaker{prec: prec, n: n, s: s, factor: factor}
}

// bakerFactor is the multi-precision twin of bernoulli.BakerFactor: the
// two-branch simplified form of the baker kernel term at x.
func (b bf) bakerFactor(x, c1, c2, c3 *big.Float) *big.Float {
	pol1 := b.new()
	pol2 := b.new()
	pol3 := b.new()
	t := b.new()

	if x.Cmp(b.rat(1, 2)) >= 0 {
		// pol1 = -9/16 + x*(3 - x*(9/2 - 2*x))
		pol1.Mul(b.int(2), x)
		pol1.Sub(b.rat(9, 2), pol1)
		pol1.Mul(pol1, x)
		pol1.Sub(b.int(3), pol1)
		pol1.Mul(pol1, x)
		pol1.Sub(pol1, b.rat(9, 16))

		// pol2 = -31/24 + x*(6 - x*(4 + x*(6 - 5*x)))
		pol2.Mul(b.int(5), x)
		pol2.Sub(b.int(6), pol2)
		pol2.Mul(pol2, x)
		pol2.Add(b.int(4), pol2)
		pol2.Mul(pol2, x)
		pol2.Sub(b.int(6), pol2)
		pol2.Mul(pol2, x)
		pol2.Sub(pol2, b.rat(31, 24))

		// t = 1 + x*(4*x - 6); pol3 = 3/64 * t² * (4*x - 3)
		t.Mul(b.int(4), x)
		t.Sub(t, b.int(6))
		t.Mul(t, x)
		t.Add(t, b.int(1))
		pol3.Mul(t, t)
		t.Mul(b.int(4), x)
		t.Sub(t, b.int(3))
		pol3.Mul(pol3, t)
		pol3.Mul(pol3, b.rat(3, 64))
	} else {
		// pol1 = -1/16 + x²*(3/2 - 2*x)
		pol1.Mul(b.int(2), x)
		pol1.Sub(b.rat(3, 2), pol1)
		pol1.Mul(pol1, x)
		pol1.Mul(pol1, x)
		pol1.Sub(pol1, b.rat(1, 16))

		// pol2 = -7/24 + x²*(8 - x*(14 - 5*x))
		pol2.Mul(b.int(5), x)
		pol2.Sub(b.int(14), pol2)
		pol2.Mul(pol2, x)
		pol2.Sub(b.int(8), pol2)
		pol2.Mul(pol2, x)
		pol2.Mul(pol2, x)
		pol2.Sub(pol2, b.rat(7, 24))

		// t = 1 + x*(2 - 4*x); pol3 = -3/64 * t² * (4*x - 1)
		t.Mul(b.int(4), x)
		t.Sub(b.int(2), t)
		t.Mul(t, x)
		t.Add(t, b.int(1))
		pol3.Mul(t, t)
		t.Mul(b.int(4), x)
		t.Sub(t, b.int(1))
		pol3.Mul(pol3, t)
		pol3.Mul(pol3, b.rat(-3, 64))
	}

	out := b.new().Mul(pol1, c1)
	pol2.Mul(pol2, c2)
	out.Add(out, pol2)
	pol3.Mul(pol3, c3)
	out.Add(out, pol3)

	return out
}
