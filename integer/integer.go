package integer

import (
	"math/big"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

var (
	zero = new(big.Int)
	ten  = big.NewInt(10)
)

// Int is an immutable signed integer of unbounded magnitude.
type Int struct {
	i *big.Int
}

// New returns the Int for v.
func New(v int64) Int {
	return Int{i: big.NewInt(v)}
}

// FromBig returns an Int with the value of b. The argument is copied. A nil b
// is zero.
func FromBig(b *big.Int) Int {
	if b == nil {
		return Int{}
	}

	return Int{i: new(big.Int).Set(b)}
}

// FromInteger returns an Int with the value of any Go integer.
func FromInteger[T constraints.Integer](v T) Int {
	// Unsigned values with the top bit set don't survive a round trip
	// through int64.
	if v < 0 {
		return Int{i: big.NewInt(int64(v))}
	}

	return Int{i: new(big.Int).SetUint64(uint64(v))}
}

// Pow10 returns 10^n.
func Pow10(n uint) Int {
	return Int{i: new(big.Int).Exp(ten, new(big.Int).SetUint64(uint64(n)), nil)}
}

// big returns the backing value for reading. It must never be modified.
func (x Int) big() *big.Int {
	if x.i == nil {
		return zero
	}

	return x.i
}

// Big returns a copy of x as a big.Int.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.big())
}

// Sign returns -1, 0 or +1 for negative, zero and positive x.
func (x Int) Sign() int {
	return x.big().Sign()
}

// IsZero returns true if x is 0.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{i: new(big.Int).Neg(x.big())}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{i: new(big.Int).Abs(x.big())}
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	return Int{i: new(big.Int).Add(x.big(), y.big())}
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	return Int{i: new(big.Int).Sub(x.big(), y.big())}
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	return Int{i: new(big.Int).Mul(x.big(), y.big())}
}

// Quo returns x/y truncated toward zero. It fails if y is zero.
func (x Int) Quo(y Int) (q Int, err error) {
	defer Error.WrapP(&err)

	if y.IsZero() {
		return Int{}, Error.New("division by zero: %s / 0", x)
	}

	return Int{i: new(big.Int).Quo(x.big(), y.big())}, nil
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	return x.big().Cmp(y.big())
}

// Equal returns true if x and y have the same value.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// String returns x in base 10.
func (x Int) String() string {
	return x.big().String()
}
