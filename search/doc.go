// Package search finds rank-1 lattice generator vectors minimizing a
// discrepancy kernel.
//
// A rank-1 lattice with n points in dim dimensions is determined by a
// generator vector (1, a_1, ..., a_{dim-1}) of integers in [1, n); its
// i-th point is the fractional part of i/n times the vector. The
// searchers scan candidate vectors, evaluate the kernel over the
// lattice each candidate generates, and keep the minimum:
//
//	kern, _ := discrepancy.NewShiftBaker1Lattice(251, 8)
//	s, _ := search.New(kern, true)
//	best, err := s.ExhaustCoprime(4)
//	a := s.BestGenerator()
//
// Searcher scans the full candidate space, which grows as n^(dim-1);
// CBC builds the vector greedily component by component in O(dim*n)
// evaluations; Korobov restricts candidates to the one-parameter
// family (1, a, a^2 mod n, ...) and scans the multiplier a. Each
// searcher also offers random variants that evaluate a fixed number of
// draws.
//
// The coprime scan variants keep lattice points distinct per
// coordinate by restricting components to values coprime with n; for a
// prime n the restriction is vacuous (declare it with the primeN
// constructor argument), and for a power-of-two n it reduces to odd
// values.
//
// Kernel values below zero signal loss of numerical precision, as
// every kernel in package discrepancy is nonnegative in exact
// arithmetic. Such candidates are skipped and reported to the metrics
// collector; a scan in which every candidate is skipped returns
// ErrNoReliableCandidate.
//
// WithWorkers spreads exhaustive scans over several goroutines. The
// partitioned scan returns exactly the serial result, tie-breaks
// included; random scans use per-worker derived streams and are
// reproducible for a fixed seed and worker count.
package search
