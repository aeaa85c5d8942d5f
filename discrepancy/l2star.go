package discrepancy

import "math"

// L2Star is the classical L2 star discrepancy, which compares the
// empirical measure of the points against the uniform one over all boxes
// anchored at the origin. It is evaluated with Warnock's formula
//
//	D² = (1/3)^s - (2^(1-s)/n) Σ_i Π_j (1 - x[i][j]²)
//	   + (1/n²) Σ_i Σ_j Π_k (1 - max(x[i][k], x[j][k])).
//
// The criterion is unweighted: coordinate weights are ignored.
type L2Star struct {
	Params
}

// NewL2Star creates an L2 star discrepancy sized for n points in s
// dimensions.
func NewL2Star(n, s int, opts ...Option) (*L2Star, error) {
	p, err := newParams(n, s, s, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &L2Star{Params: p}, nil
}

// Name returns the kernel identifier.
func (d *L2Star) Name() string { return "L2Star" }

// Compute returns the L2 star discrepancy of the first n points of
// points in dimension s. gamma is ignored. Assumes points has at least n
// rows of s coordinates each (caller's responsibility).
//
// When cancellation drives the squared discrepancy negative, Compute
// returns 0.
func (d *L2Star) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for j := 0; j < s; j++ {
			u := points[i][j]
			prod *= (1.0 - u) * (1.0 + u)
		}
		sum += prod
	}
	disc := -math.Pow(0.5, float64(s-1)) * sum / float64(n)

	sum = 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for j := 0; j < s; j++ {
			prod *= 1.0 - points[i][j]
		}
		sum += prod
	}

	sum2 := 0.0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			prod := 1.0
			for k := 0; k < s; k++ {
				prod *= 1.0 - math.Max(points[i][k], points[j][k])
			}
			sum2 += prod
		}
	}

	disc += (sum + 2.0*sum2) / (float64(n) * float64(n))
	disc += math.Pow(1.0/3.0, float64(s))

	if disc < 0.0 {
		return 0.0
	}

	return math.Sqrt(disc)
}

// Compute1 returns the L2 star discrepancy of the first n entries of t.
// t must be sorted in increasing order; the O(n) formula
//
//	D² = 1/(12n²) + (1/n) Σ_i (t[i] - (i+0.5)/n)²
//
// only holds for ordered points.
func (d *L2Star) Compute1(t []float64, n int) float64 {
	fn := float64(n)

	sum := 0.0
	for i := 0; i < n; i++ {
		diff := t[i] - (float64(i)+0.5)/fn
		sum += diff * diff
	}

	w2 := sum/fn + 1.0/(12.0*fn*fn)

	return math.Sqrt(w2)
}
