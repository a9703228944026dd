package tower

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned when inverting, dividing by, or taking the
// remainder with the additive identity.
var ErrDivisionByZero = errors.New("division by zero")

// ErrNotFinite is returned when an operand is infinite or not a number.
var ErrNotFinite = errors.New("number is not finite")

// Base is a number of height 0: an Integer, a Rational or a Float.
type Base interface {
	Number
	base()
}

// Integer is an exact whole number. It is stored in a float64, so its range
// and precision are those of a float64.
type Integer float64

// Float is an ordinary floating point number which is never integral; an
// integral result is always normalized to an Integer.
type Float float64

func (Integer) number() {}
func (Integer) base()   {}

// Height implements Number.
func (Integer) Height() int { return 0 }

func (a Integer) String() string {
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

func (Float) number() {}
func (Float) base()   {}

// Height implements Number.
func (Float) Height() int { return 0 }

func (a Float) String() string {
	f := float64(a)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.IndexByte(s, '.') < 0 {
		// the literal syntax requires a fraction part
		if i := strings.IndexByte(s, 'e'); i >= 0 {
			return s[:i] + ".0" + s[i:]
		}
		return s + ".0"
	}
	return s
}

func isZeroBase(a Base) bool {
	switch a := a.(type) {
	case Integer:
		return a == 0
	case Rational:
		return false
	case Float:
		return a == 0
	default:
		return false
	}
}

func toFloat(a Base) float64 {
	switch a := a.(type) {
	case Integer:
		return float64(a)
	case Rational:
		return float64(a.num) / float64(a.den)
	case Float:
		return float64(a)
	default:
		panic(a)
	}
}

// toFraction returns the exact fraction of an Integer or a Rational.
func toFraction(a Base) (Integer, Integer, bool) {
	switch a := a.(type) {
	case Integer:
		return a, 1, true
	case Rational:
		return a.num, a.den, true
	default:
		return 0, 0, false
	}
}

func addBase(a, b Base) Base {
	if x, ok := a.(Integer); ok {
		if y, ok := b.(Integer); ok {
			return integerResult(float64(x) + float64(y))
		}
	}
	an, ad, ok1 := toFraction(a)
	bn, bd, ok2 := toFraction(b)
	if !ok1 || !ok2 {
		return normalizeFloat(toFloat(a) + toFloat(b))
	}
	g := gcd(float64(ad), float64(bd))
	return reduce(
		float64(an)*(float64(bd)/g)+float64(bn)*(float64(ad)/g),
		float64(ad)*(float64(bd)/g),
	)
}

func mulBase(a, b Base) Base {
	if x, ok := a.(Integer); ok {
		if y, ok := b.(Integer); ok {
			return integerResult(float64(x) * float64(y))
		}
	}
	an, ad, ok1 := toFraction(a)
	bn, bd, ok2 := toFraction(b)
	if !ok1 || !ok2 {
		return normalizeFloat(toFloat(a) * toFloat(b))
	}
	return reduce(float64(an)*float64(bn), float64(ad)*float64(bd))
}

func negateBase(a Base) Base {
	switch a := a.(type) {
	case Integer:
		return newInteger(-float64(a))
	case Rational:
		return Rational{num: newInteger(-float64(a.num)), den: a.den}
	case Float:
		return Float(-a)
	default:
		panic(a)
	}
}

func inverseBase(a Base) (Base, error) {
	switch a := a.(type) {
	case Integer:
		if a == 0 {
			return nil, ErrDivisionByZero
		}
		return reduce(1, float64(a)), nil
	case Rational:
		return reduce(float64(a.den), float64(a.num)), nil
	case Float:
		if a == 0 {
			return nil, ErrDivisionByZero
		}
		return normalizeFloat(1 / float64(a)), nil
	default:
		panic(a)
	}
}

func equalBase(a, b Base) bool {
	switch a := a.(type) {
	case Integer:
		switch b := b.(type) {
		case Integer:
			return a == b
		case Float:
			return float64(a) == float64(b)
		}
	case Rational:
		switch b := b.(type) {
		case Rational:
			return a == b
		case Float:
			return toFloat(a) == float64(b)
		}
	case Float:
		return float64(a) == toFloat(b)
	}
	return false
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to,
// or greater than b.
func Compare(a, b Integer) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// Mod returns the truncated remainder of a divided by b, which has the sign
// of a.
func Mod(a, b Integer) (Integer, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return newInteger(math.Mod(float64(a), float64(b))), nil
}
