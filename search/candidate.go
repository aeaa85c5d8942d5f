package search

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/qmcgo/internal/intmath"
)

// candidates is the set of admissible values for one generator
// component: the integers in [lo, n) that survive the coprimality
// filter. The set is built once per scan and shared by every digit of
// the odometer.
type candidates struct {
	n      int
	bm     *roaring.Bitmap
	values []uint32
}

// newCandidates builds the admissible set. Without the coprime filter
// every value in [lo, n) is admissible. With it the filter depends on
// n: a prime n (asserted by the caller via primeN) admits every value,
// a power of two admits the odd values, and anything else admits the
// values v with gcd(n, v) = 1.
func newCandidates(n, lo int, coprime, primeN bool) *candidates {
	bm := roaring.New()

	switch {
	case !coprime || primeN:
		bm.AddRange(uint64(lo), uint64(n))
	case intmath.IsPowerOfTwo(n):
		for v := lo | 1; v < n; v += 2 {
			bm.Add(uint32(v))
		}
	default:
		for v := lo; v < n; v++ {
			if intmath.Coprime(n, v) {
				bm.Add(uint32(v))
			}
		}
	}

	return &candidates{n: n, bm: bm}
}

// count returns the number of admissible values.
func (c *candidates) count() int {
	return int(c.bm.GetCardinality())
}

// contains reports whether v is admissible.
func (c *candidates) contains(v int) bool {
	return v >= 0 && v <= math.MaxUint32 && c.bm.Contains(uint32(v))
}

// list returns the admissible values in ascending order, materializing
// them on first use.
func (c *candidates) list() []uint32 {
	if c.values == nil {
		c.values = c.bm.ToArray()
	}
	return c.values
}

// odometer enumerates the generator vectors (1, a_1, ..., a_{dim-1})
// whose free digits run over a candidate set. The vector is written in
// place into a caller-owned scratch slice. Digit dim-1 moves fastest;
// a digit that exhausts the set rewinds and carries into its left
// neighbor, so vectors come out in ascending mixed-radix order.
type odometer struct {
	vals []uint32
	a    []int
	idx  []int
	dim  int
}

// newOdometer positions a fresh odometer on the all-ones vector, the
// first vector of the enumeration. a must hold at least dim entries
// and stays owned by the caller.
func newOdometer(cand *candidates, a []int, dim int) *odometer {
	o := &odometer{
		vals: cand.list(),
		a:    a,
		idx:  make([]int, dim),
		dim:  dim,
	}
	o.seek(0)

	return o
}

// next advances to the following vector, reporting false once digit 1
// has exhausted the candidate set.
func (o *odometer) next() bool {
	for j := o.dim - 1; j >= 1; j-- {
		o.idx[j]++
		if o.idx[j] < len(o.vals) {
			o.a[j] = int(o.vals[o.idx[j]])
			return true
		}

		if j == 1 {
			return false
		}

		o.idx[j] = 0
		o.a[j] = int(o.vals[0])
	}

	return false
}

// seek positions the odometer on the k-th vector of the enumeration,
// counting from 0.
func (o *odometer) seek(k uint64) {
	o.a[0] = 1

	base := uint64(len(o.vals))
	for j := o.dim - 1; j >= 1; j-- {
		d := int(k % base)
		o.idx[j] = d
		o.a[j] = int(o.vals[d])
		k /= base
	}
}

// size returns the number of vectors in the enumeration and false if
// it does not fit in a uint64.
func (o *odometer) size() (uint64, bool) {
	return enumSize(uint64(len(o.vals)), o.dim-1)
}

// enumSize returns base^digits and false on overflow.
func enumSize(base uint64, digits int) (uint64, bool) {
	total := uint64(1)
	for i := 0; i < digits; i++ {
		if base != 0 && total > math.MaxUint64/base {
			return 0, false
		}
		total *= base
	}

	return total, true
}
