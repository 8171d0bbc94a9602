// Package rational provides an exact rational number built on
// arbitrary-precision integers.
//
// A Rational is a numerator and denominator pair:
//
//  value = numerator / denominator
//
// The denominator is never zero. Constructing a value with a zero denominator,
// inverting a zero value, or dividing by a zero value fails with an error of
// class ErrInvalidDenominator.
//
// Representation
//
// Values are stored exactly as given. Neither construction nor arithmetic
// reduces to lowest terms or moves the sign to the numerator, so 2/4, 1/2 and
// -1/-2 are distinct representations of the same number:
//
//  a := rational.MustNew(integer.New(5), integer.New(2))
//  b := rational.MustNew(integer.New(3), integer.New(4))
//
//  a.Add(b)          // 26 / 8
//  a.Add(b).Reduce() // 13 / 4
//
// Repeated arithmetic grows the numerator and denominator without bound. Call
// Reduce when the magnitude matters.
//
// Ordering
//
// Comparisons are defined on the represented number, not the representation,
// so they agree whether or not operands are reduced or sign-normalized. Lte is
// the primitive; it cross-multiplies and reverses the comparison when exactly
// one of the denominators is negative. The remaining comparisons are derived
// from it:
//
//  Lt(o)  = Lte(o) && !o.Lte(r)
//  Eq(o)  = Lte(o) && o.Lte(r)
//  Gte(o) = o.Lte(r)
//  Gt(o)  = o.Lt(r)
//
// Concurrency
//
// Every operation returns a new value and none modifies its receiver or
// arguments. Values may be shared between goroutines without locking.
//
// The zero value of Rational is 0/1.
package rational
