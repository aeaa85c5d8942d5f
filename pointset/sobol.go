package pointset

import "fmt"

// Direction-number seeds from Press et al., Numerical Recipes 3rd ed.,
// section 7.7. Row j holds the seed for bit j of every dimension.
const (
	sobolMaxDim = 6
	sobolMaxBit = 30
)

var (
	sobolMDeg = [sobolMaxDim]uint32{1, 2, 3, 3, 4, 4}
	sobolIP   = [sobolMaxDim]uint32{0, 1, 1, 2, 1, 4}
	sobolIV   = [sobolMaxBit * sobolMaxDim]uint32{
		1, 1, 1, 1, 1, 1, 3, 1, 3, 3, 1, 1, 5, 7, 7, 3, 3, 5, 15, 11, 5, 15, 13, 9,
	}
)

// Sobol generates successive points of a Sobol' sequence in up to six
// dimensions using the gray-code construction. It is a quasi-random
// point source for experiments and container sweeps; it does not
// implement PointSet because it is sequential rather than indexed.
//
// A Sobol generator is not safe for concurrent use.
type Sobol struct {
	dim    int
	seqNum uint32
	ix     [sobolMaxDim]uint32
	iv     [sobolMaxBit * sobolMaxDim]uint32
}

// NewSobol creates a Sobol' sequence generator producing points of the
// given dimension, between 1 and 6.
func NewSobol(dim int) (*Sobol, error) {
	if dim < 1 || dim > sobolMaxDim {
		return nil, fmt.Errorf("pointset: sobol dimension must be in [1, %d], got %d", sobolMaxDim, dim)
	}

	s := &Sobol{dim: dim}
	s.iv = sobolIV

	for k := uint32(0); k < sobolMaxDim; k++ {
		deg := sobolMDeg[k]
		for j := uint32(0); j < deg; j++ {
			s.iv[sobolMaxDim*j+k] <<= sobolMaxBit - j - 1
		}

		// Fill the remaining bits with the primitive-polynomial
		// recurrence (Press et al. eq. 7.7.2).
		for j := deg; j < sobolMaxBit; j++ {
			ipp := sobolIP[k]
			i := s.iv[sobolMaxDim*(j-deg)+k]
			i ^= i >> deg
			for l := deg - 1; l >= 1; l-- {
				if ipp&1 == 1 {
					i ^= s.iv[sobolMaxDim*(j-l)+k]
				}
				ipp >>= 1
			}
			s.iv[sobolMaxDim*j+k] = i
		}
	}

	return s, nil
}

// Dim returns the dimension of the generated points.
func (s *Sobol) Dim() int { return s.dim }

// Next returns the next point of the sequence.
func (s *Sobol) Next() []float64 {
	out := make([]float64, s.dim)
	s.NextAt(out)
	return out
}

// NextAt writes the next point of the sequence into dst, which must
// have length Dim(). The sequence holds 2^30 points; drawing past the
// end panics.
func (s *Sobol) NextAt(dst []float64) {
	if s.seqNum >= 1<<sobolMaxBit {
		panic("pointset: sobol sequence exhausted")
	}
	s.seqNum++

	// Index of the lowest clear bit of the counter: the single
	// direction number that flips in gray-code order.
	var zeroIdx uint32
	for zeroIdx = 0; zeroIdx < sobolMaxBit; zeroIdx++ {
		if s.seqNum&(1<<zeroIdx) == 0 {
			break
		}
	}

	const fac = 1.0 / (1 << sobolMaxBit)
	im := zeroIdx * sobolMaxDim
	for k := 0; k < s.dim; k++ {
		s.ix[k] ^= s.iv[im+uint32(k)]
		dst[k] = float64(s.ix[k]) * fac
	}
}
