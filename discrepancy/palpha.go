package discrepancy

import (
	"fmt"
	"math"

	"github.com/hupe1980/qmcgo/internal/bernoulli"
)

// PAlpha is the classical P_alpha criterion for rank-1 lattices with
// smoothness order alpha in {2, 4, 6, 8}. For a lattice node set it
// equals the sum of 1/(h_1···h_s)^alpha over the nonzero dual lattice
// vectors h, which the Bernoulli identity turns into one pass over the
// points:
//
//	P_alpha = beta[0] ((1/n) Σ_i Π_j (1 ± C_j B_alpha(x[i][j])) - 1),
//	C_j = (2π beta[j+1])^alpha / alpha!.
//
// The weights carry one extra leading entry: beta[0] scales the whole
// criterion and beta[j+1] weights coordinate j. Unlike the square-rooted
// discrepancies, PAlpha returns the criterion itself, which is the
// variance of the estimator for a worst-case integrand.
type PAlpha struct {
	Params

	alpha int
}

// NewPAlpha creates a P_alpha criterion of order alpha sized for n
// points in s dimensions. alpha must be one of 2, 4, 6 or 8; WithGamma
// needs s+1 entries.
func NewPAlpha(n, s, alpha int, opts ...Option) (*PAlpha, error) {
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}

	p, err := newParams(n, s, s+1, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &PAlpha{Params: p, alpha: alpha}, nil
}

func checkAlpha(alpha int) error {
	switch alpha {
	case 2, 4, 6, 8:
		return nil
	default:
		return fmt.Errorf("discrepancy: alpha must be one of 2, 4, 6, 8, got %d", alpha)
	}
}

// Name returns the kernel identifier.
func (d *PAlpha) Name() string { return "PAlpha" }

// Alpha returns the smoothness order.
func (d *PAlpha) Alpha() int { return d.alpha }

// Compute returns P_alpha for the first n lattice nodes of points in
// dimension s. gamma holds the s+1 weights beta[0..s]. Assumes points
// has at least n rows of s coordinates each and gamma at least s+1
// positive entries (caller's responsibility).
func (d *PAlpha) Compute(points [][]float64, n, s int, gamma []float64) float64 {
	c := palphaCoeffs(d.alpha, gamma, s)

	sum := 0.0
	switch d.alpha {
	case 2:
		for i := 0; i < n; i++ {
			prod := 1.0
			for j := 0; j < s; j++ {
				prod *= 1.0 + c[j]*bernoulli.Poly2(points[i][j])
			}
			sum += prod
		}
	case 4:
		for i := 0; i < n; i++ {
			prod := 1.0
			for j := 0; j < s; j++ {
				prod *= 1.0 - c[j]*bernoulli.Poly4(points[i][j])
			}
			sum += prod
		}
	case 6:
		for i := 0; i < n; i++ {
			prod := 1.0
			for j := 0; j < s; j++ {
				prod *= 1.0 + c[j]*bernoulli.Poly6(points[i][j])
			}
			sum += prod
		}
	case 8:
		for i := 0; i < n; i++ {
			prod := 1.0
			for j := 0; j < s; j++ {
				prod *= 1.0 - c[j]*bernoulli.Poly8(points[i][j])
			}
			sum += prod
		}
	}

	sum /= float64(n)

	return gamma[0] * (sum - 1.0)
}

func palphaCoeffs(alpha int, beta []float64, s int) []float64 {
	fact := float64(factorial(alpha))

	c := make([]float64, s)
	for j := 0; j < s; j++ {
		c[j] = math.Pow(2.0*math.Pi*beta[j+1], float64(alpha)) / fact
	}

	return c
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}
