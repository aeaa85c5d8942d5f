// Package pointset provides finite point sets in the unit hypercube
// used for quasi-Monte Carlo integration: rank-1 integration lattices,
// Korobov lattices and a Sobol' sequence generator.
//
// Point sets are deterministic and cheap to re-generate, so the
// discrepancy kernels and generator searches materialize them into
// plain [][]float64 matrices with Matrix or Fill rather than streaming
// coordinates one at a time.
package pointset
