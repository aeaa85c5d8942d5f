package bernoulli

// Constant terms of the even-degree polynomials, shared with the
// discrepancy kernels.
const (
	B2AtZero = 1.0 / 6.0
	B4AtZero = -1.0 / 30.0
	B4AtHalf = 7.0 / 240.0
	B6AtZero = 1.0 / 42.0
	B6AtHalf = -31.0 / 1344.0
)

// Poly evaluates the Bernoulli polynomial of the given degree at x.
// Degrees 0 through 8 are supported; any other degree panics.
// x is expected in [0, 1), which is the range the kernels produce.
func Poly(degree int, x float64) float64 {
	switch degree {
	case 0:
		return 1.0
	case 1:
		return x - 0.5
	case 2:
		return Poly2(x)
	case 3:
		return ((2.0*x-3.0)*x + 1.0) * x * 0.5
	case 4:
		return Poly4(x)
	case 5:
		return (((x-2.5)*x+5.0/3.0)*x*x - 1.0/6.0) * x
	case 6:
		return Poly6(x)
	case 7:
		return ((((x-3.5)*x+3.5)*x*x-7.0/6.0)*x*x + 1.0/6.0) * x
	case 8:
		return Poly8(x)
	default:
		panic("bernoulli: degree must be in [0, 8]")
	}
}

// Poly2 evaluates B2(x) = x(x-1) + 1/6.
func Poly2(x float64) float64 {
	return x*(x-1.0) + 1.0/6.0
}

// Poly4 evaluates B4(x) = ((x-2)x+1)x^2 - 1/30.
func Poly4(x float64) float64 {
	return ((x-2.0)*x+1.0)*x*x - 1.0/30.0
}

// Poly6 evaluates B6(x) = (((x-3)x+2.5)x^2-0.5)x^2 + 1/42.
func Poly6(x float64) float64 {
	return (((x-3.0)*x+2.5)*x*x-0.5)*x*x + 1.0/42.0
}

// Poly8 evaluates B8(x) = ((((x-4)x+14/3)x^2-7/3)x^2+2/3)x^2 - 1/30.
func Poly8(x float64) float64 {
	return ((((x-4.0)*x+14.0/3.0)*x*x-7.0/3.0)*x*x+2.0/3.0)*x*x - 1.0/30.0
}

// BakerFactor evaluates, for x in [0, 1), the folded combination
//
//	c1*[B4(x) - B4(v)] + c2*[7*B4(x) - 2*B4(v)] + c3*[B6(x) - B6(v)]
//
// where v = {x - 1/2} is the half-shift of x wrapped to [0, 1).
// The two branches are algebraically reduced forms of the combination
// above, one per sign of x - 1/2.
func BakerFactor(x, c1, c2, c3 float64) float64 {
	var pol1, pol2, pol3, temp float64
	if x >= 0.5 {
		// v = x - 0.5
		pol1 = -0.5625 + x*(3.0-x*(4.5-2.0*x))
		pol2 = -31.0/24.0 + x*(6.0-x*(4.0+x*(6.0-5.0*x)))
		temp = 1.0 + x*(-6.0+4.0*x)
		pol3 = 0.046875 * temp * temp * (4.0*x - 3.0)
	} else {
		// v = x + 0.5
		pol1 = -0.0625 + x*x*(1.5-2.0*x)
		pol2 = -7.0/24.0 + x*x*(8.0-x*(14.0-5.0*x))
		temp = 1.0 + x*(2.0-4.0*x)
		pol3 = -0.046875 * temp * temp * (4.0*x - 1.0)
	}
	return c1*pol1 + c2*pol2 + c3*pol3
}
