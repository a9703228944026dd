package tower

// Rational is an exact fraction in lowest terms with a positive denominator
// other than 1. Use MakeRational to construct one.
type Rational struct {
	num, den Integer
}

func (Rational) number() {}
func (Rational) base()   {}

// Height implements Number.
func (Rational) Height() int { return 0 }

// Numerator returns the numerator of the fraction.
func (a Rational) Numerator() Integer { return a.num }

// Denominator returns the denominator of the fraction, which is always
// positive.
func (a Rational) Denominator() Integer { return a.den }

func (a Rational) String() string {
	return a.num.String() + " " + a.den.String() + " /"
}

// MakeRational returns numerator/denominator reduced to lowest terms. The
// result is an Integer when the reduced denominator is 1. It fails when the
// denominator is zero.
func MakeRational(numerator, denominator Integer) (Base, error) {
	if denominator == 0 {
		return nil, ErrDivisionByZero
	}
	return reduce(float64(numerator), float64(denominator)), nil
}

// reduce builds the canonical Base for n/d where d != 0.
func reduce(n, d float64) Base {
	if !isFinite(n) || !isFinite(d) {
		return normalizeFloat(n / d)
	}
	if d == 1 {
		return newInteger(n)
	}
	g := gcd(n, d)
	if d < 0 {
		g = -g
	}
	n, d = n/g, d/g
	if d == 1 {
		return newInteger(n)
	}
	return Rational{num: newInteger(n), den: Integer(d)}
}
