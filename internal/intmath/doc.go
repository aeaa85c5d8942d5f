// Package intmath provides small integer helpers shared by the lattice
// point sets and the generator searches: greatest common divisor,
// modular exponentiation and power-of-two detection.
package intmath
