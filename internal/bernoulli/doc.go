// Package bernoulli evaluates the Bernoulli polynomials of degree 0
// through 8 in Horner form, together with the folded combination used
// by the shift-baker discrepancy kernels.
//
// The even-degree polynomials B2, B4, B6, B8 are the building blocks of
// the shift-invariant reproducing kernels: B2(x) = x^2 - x + 1/6,
// B4(x) = x^4 - 2x^3 + x^2 - 1/30, and so on.
package bernoulli
