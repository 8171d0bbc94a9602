package rational

// Lte returns true if r <= o.
func (r Rational) Lte(o Rational) bool {
	d, od := r.Denominator(), o.Denominator()

	left := r.num.Mul(od)
	right := o.num.Mul(d)

	// Cross-multiplying by a single negative denominator flips the
	// inequality.
	if (d.Sign() < 0) != (od.Sign() < 0) {
		return left.Cmp(right) >= 0
	}

	return left.Cmp(right) <= 0
}

// Lt returns true if r < o.
func (r Rational) Lt(o Rational) bool {
	return r.Lte(o) && !o.Lte(r)
}

// Eq returns true if r and o represent the same number.
func (r Rational) Eq(o Rational) bool {
	return r.Lte(o) && o.Lte(r)
}

// Gte returns true if r >= o.
func (r Rational) Gte(o Rational) bool {
	return o.Lte(r)
}

// Gt returns true if r > o.
func (r Rational) Gt(o Rational) bool {
	return o.Lt(r)
}

// Cmp returns -1, 0 or +1 when r is less than, equal to or greater than o.
func (r Rational) Cmp(o Rational) int {
	le, ge := r.Lte(o), o.Lte(r)

	switch {
	case le && ge:
		return 0
	case le:
		return -1
	}

	return 1
}

// Compare is Cmp as a function, for use with sorting routines.
func Compare(a, b Rational) int {
	return a.Cmp(b)
}
