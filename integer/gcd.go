package integer

import "math/big"

// GCDFunc computes the non-negative greatest common divisor of the magnitudes
// of x and y.
type GCDFunc func(x, y Int) Int

var (
	_ GCDFunc = GCD
	_ GCDFunc = EuclidGCD
)

// GCD returns the greatest common divisor of |x| and |y| using the binary GCD
// algorithm.
func GCD(x, y Int) Int {
	a := new(big.Int).Abs(x.big())
	b := new(big.Int).Abs(y.big())

	switch {
	case a.Sign() == 0:
		return Int{i: b}
	case b.Sign() == 0:
		return Int{i: a}
	}

	// Common factors of two.
	za := a.TrailingZeroBits()
	zb := b.TrailingZeroBits()
	shift := za
	if zb < shift {
		shift = zb
	}

	a.Rsh(a, za)

	// a is odd from here on.
	for b.Sign() != 0 {
		b.Rsh(b, b.TrailingZeroBits())

		if a.Cmp(b) > 0 {
			a, b = b, a
		}

		b.Sub(b, a)
	}

	return Int{i: a.Lsh(a, shift)}
}

// EuclidGCD returns the greatest common divisor of |x| and |y| as computed by
// math/big.
func EuclidGCD(x, y Int) Int {
	a := new(big.Int).Abs(x.big())
	b := new(big.Int).Abs(y.big())

	return Int{i: new(big.Int).GCD(nil, nil, a, b)}
}
