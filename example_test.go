package rational_test

import (
	"fmt"

	"github.com/calebcase/rational"
	"github.com/calebcase/rational/integer"
)

func ExampleRational_Add() {
	a := rational.MustNew(integer.New(5), integer.New(2))
	b := rational.MustNew(integer.New(3), integer.New(4))

	sum := a.Add(b)
	fmt.Println(sum)
	fmt.Println(sum.Reduce())
	// Output:
	// 26 / 8
	// 13 / 4
}

func ExampleRational_Div() {
	a := rational.MustNew(integer.New(5), integer.New(2))
	zero := rational.MustNew(integer.New(0), integer.New(5))

	_, err := a.Div(zero)
	fmt.Println(rational.ErrInvalidDenominator.Has(err))
	// Output:
	// true
}

func ExampleRational_Eq() {
	a := rational.MustNew(integer.New(1), integer.New(2))
	b := rational.MustNew(integer.New(-1), integer.New(-2))
	c := rational.MustNew(integer.New(1), integer.New(-2))

	fmt.Println(a.Eq(b), a.Gt(c), c.IsNegative())
	// Output:
	// true true true
}

func ExampleNew() {
	_, err := rational.New(integer.New(1), integer.New(0))
	fmt.Println(err)
	// Output:
	// invalid denominator: 1 / 0
}
