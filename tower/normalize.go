package tower

import "math"

// newInteger normalizes the negative zero.
func newInteger(f float64) Integer {
	if f == 0 {
		return 0
	}
	return Integer(f)
}

// integerResult keeps an Integer finite: a sum or product out of the float64
// range becomes a Float.
func integerResult(f float64) Base {
	if !isFinite(f) {
		return Float(f)
	}
	return newInteger(f)
}

// normalizeFloat turns an integral finite result into an Integer.
func normalizeFloat(f float64) Base {
	if f == 0 {
		return Integer(0)
	}
	if isFinite(f) && f == math.Trunc(f) {
		return Integer(f)
	}
	return Float(f)
}

// NewFloat returns f as a Base, normalized to an Integer when it is integral.
func NewFloat(f float64) Base {
	return normalizeFloat(f)
}

// IsFinite reports whether every component of a is finite.
func IsFinite(a Number) bool {
	switch a := a.(type) {
	case *Node:
		return IsFinite(a.real) && IsFinite(a.image)
	case Integer:
		return isFinite(float64(a))
	case Rational:
		return isFinite(float64(a.num)) && isFinite(float64(a.den))
	case Float:
		return isFinite(float64(a))
	default:
		return false
	}
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// gcd returns the positive greatest common divisor of whole numbers x and y.
func gcd(x, y float64) float64 {
	x, y = math.Abs(x), math.Abs(y)
	for y != 0 {
		x, y = y, math.Mod(x, y)
	}
	return x
}
