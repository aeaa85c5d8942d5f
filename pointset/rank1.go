package pointset

import (
	"fmt"
	"math"
)

// Rank1 is a rank-1 integration lattice: the n points
//
//	x_i = (i/n) * (a_0, a_1, ..., a_{s-1}) mod 1,   i = 0, ..., n-1.
//
// Generator components are reduced modulo n at construction; negative
// components wrap into [0, n).
type Rank1 struct {
	n    int
	s    int
	orig []int     // generator as supplied, kept for SetNumPoints
	a    []int     // reduced modulo n
	v    []float64 // reduced generator scaled by 1/n
}

// NewRank1 creates a rank-1 lattice with n points in s dimensions from
// the generator vector a. Only the first s components of a are used.
func NewRank1(n int, a []int, s int) (*Rank1, error) {
	if n < 1 {
		return nil, fmt.Errorf("pointset: number of points must be positive, got %d", n)
	}
	if s < 1 {
		return nil, fmt.Errorf("pointset: dimension must be positive, got %d", s)
	}
	if len(a) < s {
		return nil, fmt.Errorf("pointset: generator has %d components, need %d", len(a), s)
	}

	r := &Rank1{
		n:    n,
		s:    s,
		orig: make([]int, s),
		a:    make([]int, s),
		v:    make([]float64, s),
	}
	r.setGenerator(a)

	return r, nil
}

func (r *Rank1) setGenerator(a []int) {
	copy(r.orig, a[:r.s])
	r.reduce()
}

func (r *Rank1) reduce() {
	for j := 0; j < r.s; j++ {
		aj := r.orig[j] % r.n
		if aj < 0 {
			aj += r.n
		}
		r.a[j] = aj
		r.v[j] = float64(aj) / float64(r.n)
	}
}

// SetGenerator replaces the generator vector without reallocating,
// so a search loop can reuse one lattice across candidates.
// Only the first Dim() components of a are used.
func (r *Rank1) SetGenerator(a []int) error {
	if len(a) < r.s {
		return fmt.Errorf("pointset: generator has %d components, need %d", len(a), r.s)
	}
	r.setGenerator(a)
	return nil
}

// NumPoints returns the number of points n.
func (r *Rank1) NumPoints() int { return r.n }

// SetNumPoints changes the number of points and re-reduces the most
// recently supplied generator modulo the new n.
func (r *Rank1) SetNumPoints(n int) error {
	if n < 1 {
		return fmt.Errorf("pointset: number of points must be positive, got %d", n)
	}
	r.n = n
	r.reduce()
	return nil
}

// Dim returns the dimension s.
func (r *Rank1) Dim() int { return r.s }

// Generator returns a copy of the reduced generator vector.
func (r *Rank1) Generator() []int {
	out := make([]int, r.s)
	copy(out, r.a)
	return out
}

// Coordinate returns the j-th coordinate of point i, the fractional
// part of i*a_j/n.
func (r *Rank1) Coordinate(i, j int) float64 {
	return math.Mod(float64(i)*r.v[j], 1.0)
}

// Fill writes the first dim coordinates of every point into dst.
// dst must have at least n rows of at least dim columns; dim must not
// exceed Dim(). Fill avoids per-candidate allocation in search loops.
func (r *Rank1) Fill(dst [][]float64, dim int) {
	for i := 0; i < r.n; i++ {
		fi := float64(i)
		row := dst[i]
		for j := 0; j < dim; j++ {
			row[j] = math.Mod(fi*r.v[j], 1.0)
		}
	}
}
