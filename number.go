package scheme

// Exact rational arithmetic over int64. Every numeric primitive works
// on (numerator, denominator) pairs; integers carry denominator 1.
// Comparison cross-multiplies, it never goes through floating point.

type ratio struct {
	num, den int64
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	r := a / gcd(a, b) * b
	if r < 0 {
		r = -r
	}
	return r
}

// normalize reduces num/den to lowest terms with a strictly positive
// denominator. A zero denominator is a division-by-zero failure.
func normalize(num, den int64) (int64, int64, error) {
	if den == 0 {
		return 0, 0, newError(ErrDivisionByZero, "division by zero")
	}
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return 0, 1, nil
	}
	g := gcd(num, den)
	return num / g, den / g, nil
}

// asRatio views a numeric value as a normalized fraction.
func asRatio(v Value) (ratio, error) {
	switch n := v.(type) {
	case *Integer:
		return ratio{n.N, 1}, nil
	case *Rational:
		return ratio{n.Num, n.Den}, nil
	}
	return ratio{}, newError(ErrType, "expects a number, got %s", Show(v))
}

func (r ratio) normalized() (ratio, error) {
	num, den, err := normalize(r.num, r.den)
	if err != nil {
		return ratio{}, err
	}
	return ratio{num, den}, nil
}

// value collapses a denominator of 1 back to an integer.
func (r ratio) value() (Value, error) {
	num, den, err := normalize(r.num, r.den)
	if err != nil {
		return nil, err
	}
	if den == 1 {
		return IntegerV(num), nil
	}
	return &Rational{Num: num, Den: den}, nil
}

func (r ratio) add(o ratio) ratio {
	m := lcm(r.den, o.den)
	return ratio{r.num*(m/r.den) + o.num*(m/o.den), m}
}

func (r ratio) sub(o ratio) ratio {
	m := lcm(r.den, o.den)
	return ratio{r.num*(m/r.den) - o.num*(m/o.den), m}
}

func (r ratio) mul(o ratio) ratio {
	return ratio{r.num * o.num, r.den * o.den}
}

func (r ratio) div(o ratio) (ratio, error) {
	if o.num == 0 {
		return ratio{}, newError(ErrDivisionByZero, "division by zero")
	}
	return ratio{r.num * o.den, r.den * o.num}, nil
}

func (r ratio) neg() ratio {
	return ratio{-r.num, r.den}
}

func (r ratio) recip() (ratio, error) {
	if r.num == 0 {
		return ratio{}, newError(ErrDivisionByZero, "division by zero")
	}
	return ratio{r.den, r.num}, nil
}

// compare returns -1, 0 or 1 by cross-multiplication.
func (r ratio) compare(o ratio) int {
	left := r.num * o.den
	right := o.num * r.den
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	}
	return 0
}

// mulCheck multiplies two int64 and reports whether the product stayed
// in range.
func mulCheck(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

// intPow is exponentiation by squaring for non-negative exponents.
// Any intermediate outside the int64 range fails with overflow.
func intPow(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, newError(ErrType, "expt: negative exponent not supported")
	}
	if base == 0 && exp == 0 {
		return 0, newError(ErrType, "expt: 0^0 is undefined")
	}
	result := int64(1)
	b := base
	for exp > 0 {
		if exp%2 == 1 {
			r, ok := mulCheck(result, b)
			if !ok {
				return 0, newError(ErrOverflow, "expt: integer overflow")
			}
			result = r
		}
		exp /= 2
		if exp > 0 {
			sq, ok := mulCheck(b, b)
			if !ok {
				return 0, newError(ErrOverflow, "expt: integer overflow")
			}
			b = sq
		}
	}
	return result, nil
}
