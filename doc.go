// Package qmcgo provides quasi-Monte Carlo discrepancy computation and
// lattice parameter search for Go.
//
// A discrepancy measures how far a finite point set in the unit
// hypercube [0,1)^s deviates from the uniform distribution. Low
// discrepancy means good quasi-Monte Carlo integration error, so the
// usual workflow is: pick a figure of merit, evaluate candidate point
// sets against it, keep the best.
//
// # Kernels
//
// Package discrepancy implements the classical L2 figures of merit
// (star, symmetric, unanchored, Hickernell's modified variant), the
// shift-invariant kernels for randomly shifted point sets, their O(n)
// specializations for rank-1 lattices, and the P-alpha lattice
// criterion:
//
//	kern, _ := discrepancy.NewL2Star(n, s)
//	d := kern.Compute(points, n, s, kern.Gamma())
//
// # Point Sets
//
// Package pointset provides the node sets the kernels are usually
// evaluated on: rank-1 lattices, Korobov lattices and a small Sobol
// sequence for quick experiments:
//
//	lat, _ := pointset.NewRank1(n, []int{1, 17, 29}, 3)
//	d := discrepancy.ComputeSet(kern, lat, nil)
//
// # Searching
//
// Package search looks for good rank-1 lattice generator vectors by
// exhaustive, random, component-by-component or Korobov scans:
//
//	kern, _ := discrepancy.NewShiftBaker1Lattice(n, s)
//	s, _ := search.NewKorobov(kern, true)
//	best, _ := s.Exhaust(dim)
//	a := s.BestGenerator()
//
// # Containers
//
// The Container in this package computes several kernels side by side
// across a sweep of a parameter (number of points, dimension, sample
// index), post-processes the series (scaling, logarithms) and reports
// linear regression slopes, which is how convergence rates are usually
// estimated:
//
//	c, _ := qmcgo.NewContainer(k1, k2)
//	c.Init(len(sizes))
//	for i, n := range sizes {
//	    c.SetParam(i, math.Log2(float64(n)))
//	    c.Compute(i, points[i], n, s)
//	    c.Log2(i)
//	}
//	slopes := c.RegressionSlopes()
//
// # Observability
//
// Searches accept a structured Logger (a thin slog wrapper) and a
// MetricsCollector interface for counting scans, evaluations and
// precision losses. Both default to no-ops.
package qmcgo
