package discrepancy

import "math"

// L2Symmetric is the L2 symmetric discrepancy of Hickernell, which is
// invariant under the reflection x -> 1-x of any coordinate:
//
//	D² = (4/3)^s - (2/n) Σ_i Π_j (1 + 2x[i][j] - 2x[i][j]²)
//	   + (2^s/n²) Σ_i Σ_j Π_k (1 - |x[i][k] - x[j][k]|).
//
// The criterion is unweighted: coordinate weights are ignored.
type L2Symmetric struct {
	Params
}

// NewL2Symmetric creates an L2 symmetric discrepancy sized for n points
// in s dimensions.
func NewL2Symmetric(n, s int, opts ...Option) (*L2Symmetric, error) {
	p, err := newParams(n, s, s, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &L2Symmetric{Params: p}, nil
}

// Name returns the kernel identifier.
func (d *L2Symmetric) Name() string { return "L2Symmetric" }

// Compute returns the L2 symmetric discrepancy of the first n points of
// points in dimension s. gamma is ignored. Assumes points has at least n
// rows of s coordinates each (caller's responsibility).
//
// Returns -1 when cancellation drives the squared discrepancy negative.
func (d *L2Symmetric) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for j := 0; j < s; j++ {
			u := 0.5 - points[i][j]
			prod *= 1.5 - 2.0*u*u
		}
		sum += prod
	}
	disc := -2.0 * sum / float64(n)

	// The diagonal of the pair sum contributes a product of ones per point.
	sum = float64(n)
	sum2 := 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			prod := 1.0
			for k := 0; k < s; k++ {
				prod *= 1.0 - math.Abs(points[i][k]-points[j][k])
			}
			sum2 += prod
		}
	}

	disc += (sum + 2.0*sum2) * math.Pow(2.0, float64(s)) / (float64(n) * float64(n))
	disc += math.Pow(4.0/3.0, float64(s))

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}

// Compute1 returns the L2 symmetric discrepancy of the first n entries
// of t. Returns 0 when cancellation drives the squared discrepancy
// negative.
func (d *L2Symmetric) Compute1(t []float64, n int) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += t[i] * (1.0 - t[i])
	}
	disc := -4.0 * sum / float64(n)

	sum = 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			sum += math.Abs(t[i] - t[j])
		}
	}

	disc -= 4.0 * sum / (float64(n) * float64(n))
	disc += 4.0 / 3.0

	if disc < 0.0 {
		return 0.0
	}

	return math.Sqrt(disc)
}
