package pointset

import (
	"fmt"
	"math"

	"github.com/hupe1980/qmcgo/internal/intmath"
)

// Korobov is a Korobov lattice: a rank-1 lattice whose generator vector
// is the successive powers of a single multiplier a,
//
//	x_i = (i/n) * (a^t, a^{t+1}, ..., a^{t+s-1}) mod 1.
//
// The standard Korobov lattice has t = 0, so the generator starts at 1.
type Korobov struct {
	n    int
	s    int
	genA int // multiplier as given, before reduction mod n
	t    int
	v    []float64
}

// NewKorobov creates a Korobov lattice with n points in s dimensions
// and multiplier a.
func NewKorobov(n, a, s int) (*Korobov, error) {
	return NewKorobovShifted(n, a, s, 0)
}

// NewKorobovShifted creates a Korobov lattice whose generator powers
// start at a^t instead of a^0. t = 0 gives the standard lattice.
func NewKorobovShifted(n, a, s, t int) (*Korobov, error) {
	if n < 1 {
		return nil, fmt.Errorf("pointset: number of points must be positive, got %d", n)
	}
	if s < 1 {
		return nil, fmt.Errorf("pointset: dimension must be positive, got %d", s)
	}
	if t < 0 {
		return nil, fmt.Errorf("pointset: shift must be non-negative, got %d", t)
	}

	k := &Korobov{
		n:    n,
		s:    s,
		genA: a,
		t:    t,
		v:    make([]float64, s),
	}

	aa := a % n
	if aa < 0 {
		aa += n
	}
	b := intmath.ModPow(int64(aa), t, n)
	norm := 1.0 / float64(n)
	k.v[0] = float64(b) * norm
	for j := 1; j < s; j++ {
		b = int64(aa) * b % int64(n)
		k.v[j] = float64(b) * norm
	}

	return k, nil
}

// NumPoints returns the number of points n.
func (k *Korobov) NumPoints() int { return k.n }

// Dim returns the dimension s.
func (k *Korobov) Dim() int { return k.s }

// Multiplier returns the multiplier a as given to the constructor,
// before reduction mod n.
func (k *Korobov) Multiplier() int { return k.genA }

// Coordinate returns the j-th coordinate of point i.
func (k *Korobov) Coordinate(i, j int) float64 {
	return math.Mod(float64(i)*k.v[j], 1.0)
}

// Fill writes the first dim coordinates of every point into dst.
// dst must have at least n rows of at least dim columns; dim must not
// exceed Dim(). Fill avoids per-candidate allocation in search loops.
func (k *Korobov) Fill(dst [][]float64, dim int) {
	for i := 0; i < k.n; i++ {
		fi := float64(i)
		row := dst[i]
		for j := 0; j < dim; j++ {
			row[j] = math.Mod(fi*k.v[j], 1.0)
		}
	}
}
