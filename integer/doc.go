// Package integer provides an immutable arbitrary-precision integer.
//
// An Int wraps a math/big.Int and never modifies it after construction. Every
// operation allocates a new result, so an Int may be copied and shared freely
// between goroutines:
//
//  x := integer.New(6)
//  y := x.Neg()        // x is still 6
//  z := x.Mul(y)       // -36
//
// The zero value is the integer 0.
//
// Greatest Common Divisor
//
// Two interchangeable GCD routines are provided. GCD is the binary (Stein's)
// algorithm, which works only with shifts and subtraction. EuclidGCD defers to
// math/big. Both return the non-negative GCD of the magnitudes of their
// operands and satisfy GCDFunc:
//
//  GCD(0, 0)   = 0
//  GCD(0, -7)  = 7
//  GCD(-12, 18) = 6
package integer
