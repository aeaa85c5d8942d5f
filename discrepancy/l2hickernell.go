package discrepancy

import "math"

const rac3 = 1.73205080756887729352 // sqrt(3)

// L2Hickernell is Hickernell's modified L2 discrepancy:
//
//	D² = (4/3)^s - (2^(1-s)/n) Σ_i Π_j (3 - x[i][j]²)
//	   + (1/n²) Σ_i Σ_j Π_k (2 - max(x[i][k], x[j][k])).
//
// The criterion is unweighted: coordinate weights are ignored.
type L2Hickernell struct {
	Params
}

// NewL2Hickernell creates an L2 Hickernell discrepancy sized for n
// points in s dimensions.
func NewL2Hickernell(n, s int, opts ...Option) (*L2Hickernell, error) {
	p, err := newParams(n, s, s, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &L2Hickernell{Params: p}, nil
}

// Name returns the kernel identifier.
func (d *L2Hickernell) Name() string { return "L2Hickernell" }

// Compute returns the discrepancy of the first n points of points in
// dimension s. gamma is ignored. Assumes points has at least n rows of s
// coordinates each (caller's responsibility).
//
// Returns -1 when cancellation drives the squared discrepancy negative.
func (d *L2Hickernell) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for j := 0; j < s; j++ {
			u := points[i][j]
			prod *= (rac3 - u) * (rac3 + u)
		}
		sum += prod
	}
	disc := -math.Pow(0.5, float64(s-1)) * sum / float64(n)

	sum = 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for j := 0; j < s; j++ {
			prod *= 2.0 - points[i][j]
		}
		sum += prod
	}

	sum2 := 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			prod := 1.0
			for k := 0; k < s; k++ {
				prod *= 2.0 - math.Max(points[i][k], points[j][k])
			}
			sum2 += prod
		}
	}

	disc += (sum + 2.0*sum2) / (float64(n) * float64(n))
	disc += math.Pow(4.0/3.0, float64(s))

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}

// Compute1 returns the discrepancy of the first n entries of t. Returns
// -1 when cancellation drives the squared discrepancy negative.
func (d *L2Hickernell) Compute1(t []float64, n int) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += t[i] * t[i]
	}
	disc := sum / float64(n)

	sum = 0.0
	for i := 0; i < n; i++ {
		sum += t[i]
	}

	sum2 := 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			sum2 += math.Max(t[i], t[j])
		}
	}

	disc -= (sum + 2.0*sum2) / (float64(n) * float64(n))
	disc += 1.0 / 3.0

	if disc < 0.0 {
		return -1.0
	}

	return math.Sqrt(disc)
}
