package rational

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"

	"github.com/calebcase/rational/integer"
)

// ErrInvalidDenominator is the error class for operations that would produce
// a zero denominator.
var ErrInvalidDenominator = errs.Class("invalid denominator")

var one = integer.New(1)

// Rational is an exact rational number.
type Rational struct {
	num integer.Int

	// den is never zero once constructed. The zero value of Rational leaves
	// it unset, which is read as 1.
	den integer.Int
}

// New returns numerator/denominator. The values are stored as given. It fails
// if denominator is zero.
func New(numerator, denominator integer.Int) (r Rational, err error) {
	if denominator.IsZero() {
		return Rational{}, ErrInvalidDenominator.New("%s / 0", numerator)
	}

	return Rational{
		num: numerator,
		den: denominator,
	}, nil
}

// MustNew is like New, but panics if denominator is zero.
func MustNew(numerator, denominator integer.Int) Rational {
	r, err := New(numerator, denominator)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInts returns numerator/denominator for any Go integer type.
func FromInts[T constraints.Integer](numerator, denominator T) (Rational, error) {
	return New(integer.FromInteger(numerator), integer.FromInteger(denominator))
}

// FromInt returns n/1.
func FromInt(n integer.Int) Rational {
	return Rational{
		num: n,
		den: one,
	}
}

// FromDecimal returns the exact value of d. The result is not reduced, so
// 1.50 becomes 150/100.
func FromDecimal(d decimal.Decimal) Rational {
	coefficient := integer.FromBig(d.Coefficient())

	exp := d.Exponent()
	if exp >= 0 {
		return FromInt(coefficient.Mul(integer.Pow10(uint(exp))))
	}

	return Rational{
		num: coefficient,
		den: integer.Pow10(uint(-int64(exp))),
	}
}

// FromRat returns the value of x. A nil x is zero.
func FromRat(x *big.Rat) Rational {
	if x == nil {
		return Rational{}
	}

	return Rational{
		num: integer.FromBig(x.Num()),
		den: integer.FromBig(x.Denom()),
	}
}

// Rat returns r as a normalized big.Rat.
func (r Rational) Rat() *big.Rat {
	return new(big.Rat).SetFrac(r.num.Big(), r.Denominator().Big())
}

// Numerator returns the numerator as stored.
func (r Rational) Numerator() integer.Int {
	return r.num
}

// Denominator returns the denominator as stored.
func (r Rational) Denominator() integer.Int {
	if r.den.IsZero() {
		return one
	}

	return r.den
}

// Pair returns the numerator and denominator, in that order.
func (r Rational) Pair() [2]integer.Int {
	return [2]integer.Int{r.num, r.Denominator()}
}

// Abs returns |numerator| / |denominator|.
func (r Rational) Abs() Rational {
	return Rational{
		num: r.num.Abs(),
		den: r.Denominator().Abs(),
	}
}

// Neg returns -numerator / denominator.
func (r Rational) Neg() Rational {
	return Rational{
		num: r.num.Neg(),
		den: r.Denominator(),
	}
}

// Add returns r+o over the product of the denominators. The result is not
// reduced.
func (r Rational) Add(o Rational) Rational {
	d, od := r.Denominator(), o.Denominator()

	return Rational{
		num: o.num.Mul(d).Add(r.num.Mul(od)),
		den: d.Mul(od),
	}
}

// Sub returns r-o, computed as r.Add(o.Neg()).
func (r Rational) Sub(o Rational) Rational {
	return r.Add(o.Neg())
}

// Inv returns denominator/numerator. It fails if the numerator is zero.
func (r Rational) Inv() (Rational, error) {
	return New(r.Denominator(), r.num)
}

// Mul returns r*o. The result is not reduced.
func (r Rational) Mul(o Rational) Rational {
	return Rational{
		num: o.num.Mul(r.num),
		den: o.Denominator().Mul(r.Denominator()),
	}
}

// Div returns r/o, computed as r.Mul(o.Inv()). It fails if o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	inv, err := o.Inv()
	if err != nil {
		return Rational{}, err
	}

	return r.Mul(inv), nil
}

// Reduce returns r in lowest terms. The sign of each part is kept, so 10/-20
// reduces to 1/-2.
func (r Rational) Reduce() Rational {
	return r.ReduceFunc(integer.GCD)
}

// ReduceFunc is like Reduce but uses gcd to find the common divisor. It
// panics if gcd returns zero for a valid value.
func (r Rational) ReduceFunc(gcd integer.GCDFunc) Rational {
	d := r.Denominator()
	g := gcd(r.num, d)

	num, err := r.num.Quo(g)
	if err != nil {
		panic(err)
	}

	den, err := d.Quo(g)
	if err != nil {
		panic(err)
	}

	return Rational{
		num: num,
		den: den,
	}
}

// Sign returns -1, 0 or +1 for negative, zero and positive r.
func (r Rational) Sign() int {
	return r.num.Sign() * r.Denominator().Sign()
}

// IsZero returns true if the numerator is zero.
func (r Rational) IsZero() bool {
	return r.num.IsZero()
}

// IsPositive returns true if the numerator and denominator are both positive
// or both negative.
func (r Rational) IsPositive() bool {
	ns, ds := r.num.Sign(), r.Denominator().Sign()

	return (ns > 0 && ds > 0) || (ns < 0 && ds < 0)
}

// IsNegative returns true if r is neither zero nor positive.
func (r Rational) IsNegative() bool {
	return !r.num.IsZero() && !r.IsPositive()
}

// String returns "numerator / denominator" as stored.
func (r Rational) String() string {
	return fmt.Sprintf("%s / %s", r.num, r.Denominator())
}
