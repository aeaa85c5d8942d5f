package intmath

// GCD returns the greatest common divisor of x and y.
// Negative inputs are reduced by absolute value, so GCD(-4, 6) == 2.
// GCD(0, 0) == 0.
func GCD(x, y int) int {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// Coprime reports whether x and y have no common factor other than 1.
func Coprime(x, y int) bool {
	return GCD(x, y) == 1
}

// ModPow returns a^e mod m computed by binary exponentiation.
// m must be positive and e non-negative; m must fit in 31 bits so the
// intermediate products cannot overflow int64.
func ModPow(a int64, e int, m int) int64 {
	mm := int64(m)
	a %= mm
	if a < 0 {
		a += mm
	}
	result := int64(1) % mm
	for e > 0 {
		if e&1 == 1 {
			result = result * a % mm
		}
		a = a * a % mm
		e >>= 1
	}
	return result
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
