// Package discrepancy implements figures of merit that measure how far a
// point set deviates from the uniform distribution on the unit hypercube.
//
// Two families are provided. The first contains the classical L2
// discrepancies (star, symmetric, centered à la Hickernell, unanchored),
// which compare the empirical distribution of the points against the
// uniform one over boxes. The second contains shift-invariant kernel
// criteria built from Bernoulli polynomials (Shift1, Shift2, ShiftBaker1
// and their lattice specializations, plus the PAlpha criterion), which
// bound the worst-case integration error of randomly shifted rank-1
// lattice rules.
//
// Every kernel computes in O(n²s) time from an arbitrary point matrix.
// The *Lattice variants exploit the group structure of rank-1 lattices
// to collapse the pairwise sum, computing the same value in O(ns). For
// point counts where float64 loses all precision, BigShiftBaker1Lattice
// evaluates in configurable multi-precision arithmetic directly from a
// generator vector.
//
// Kernels report precision loss in-band: when cancellation drives the
// squared discrepancy negative, the affected methods return a sentinel
// (usually -1) instead of a square root of a negative number. The
// sentinel convention of each method is stated in its documentation.
package discrepancy
