package discrepancy

import "math"

// L2Unanchored is the unanchored L2 discrepancy, which compares the
// empirical measure of the points against the uniform one over all
// axis-parallel boxes, not only those anchored at the origin:
//
//	D² = (1/12)^s - (2^(1-s)/n) Σ_i Π_j x[i][j](1 - x[i][j])
//	   + (1/n²) Σ_i Σ_j Π_k (min(x[i][k], x[j][k]) - x[i][k]·x[j][k]).
//
// The criterion is unweighted: coordinate weights are ignored.
type L2Unanchored struct {
	Params
}

// NewL2Unanchored creates an unanchored L2 discrepancy sized for n
// points in s dimensions.
func NewL2Unanchored(n, s int, opts ...Option) (*L2Unanchored, error) {
	p, err := newParams(n, s, s, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &L2Unanchored{Params: p}, nil
}

// Name returns the kernel identifier.
func (d *L2Unanchored) Name() string { return "L2Unanchored" }

// Compute returns the unanchored L2 discrepancy of the first n points of
// points in dimension s. gamma is ignored. Assumes points has at least n
// rows of s coordinates each (caller's responsibility).
//
// Returns -1 when cancellation drives the squared discrepancy negative.
func (d *L2Unanchored) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	// The diagonal of the pair sum reduces to the single-point sum, so
	// both share one pass.
	sum := 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for k := 0; k < s; k++ {
			prod *= points[i][k] * (1.0 - points[i][k])
		}
		sum += prod
	}
	disc := sum / float64(n) * (1.0/float64(n) - math.Pow(0.5, float64(s-1)))

	sum = 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			prod := 1.0
			for k := 0; k < s; k++ {
				prod *= math.Min(points[i][k], points[j][k]) - points[i][k]*points[j][k]
			}
			sum += prod
		}
	}

	disc += 2.0 * sum / (float64(n) * float64(n))
	disc += math.Pow(1.0/12.0, float64(s))

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}

// Compute1 returns the unanchored L2 discrepancy of the first n entries
// of t. Returns -1 when cancellation drives the squared discrepancy
// negative.
func (d *L2Unanchored) Compute1(t []float64, n int) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += t[i] * (1.0 - t[i])
	}
	disc := -(1.0 - 1.0/float64(n)) * sum / float64(n)

	sum2 := 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			sum2 += math.Min(t[i], t[j]) - t[i]*t[j]
		}
	}

	disc += 2.0 * sum2 / (float64(n) * float64(n))
	disc += 1.0 / 12.0

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}
