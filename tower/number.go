// Package tower implements an exact numeric tower built by the
// Cayley–Dickson construction over rationals: real, complex, quaternion,
// octonion, sedenion and higher algebras of arbitrary height.
//
// Multiplication is neither commutative (from height 2) nor associative
// (from height 3), and zero divisors exist from height 4. Inverse follows the
// formula conj(a)/|a|² at every height, which is not a group inverse beyond
// the octonions.
package tower

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Number is an element of the tower. It is either a Base value or a *Node.
type Number interface {
	// Height is the doubling depth: 0 for Base, 1 for complex numbers,
	// 2 for quaternions and so on.
	Height() int
	// String returns the canonical postfix form, which evaluates back to the
	// same number.
	String() string
	number()
}

// Node is a pair (real, image) of lower numbers at some height. The image is
// never zero; such a node is always simplified to its real part.
type Node struct {
	real, image Number
	height      int
}

func (*Node) number() {}

// Height implements Number.
func (a *Node) Height() int { return a.height }

func (a *Node) String() string {
	var sb strings.Builder
	var n int
	terms(a, 0, func(index uint64, coef Base) {
		if n > 0 {
			sb.WriteByte(' ')
		}
		if index == 0 {
			sb.WriteString(coef.String())
		} else {
			if c, ok := coef.(Integer); !ok || c != 1 {
				sb.WriteString(coef.String())
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatUint(index, 10))
			sb.WriteString(" e")
			if c, ok := coef.(Integer); !ok || c != 1 {
				sb.WriteString(" *")
			}
		}
		if n > 0 {
			sb.WriteString(" +")
		}
		n++
	})
	if n == 0 {
		return "0"
	}
	return sb.String()
}

// terms calls f with every non-zero coefficient in basis order.
func terms(a Number, offset uint64, f func(uint64, Base)) {
	switch a := a.(type) {
	case *Node:
		terms(a.real, offset, f)
		terms(a.image, offset+1<<(a.height-1), f)
	case Base:
		if !isZeroBase(a) {
			f(offset, a)
		}
	}
}

func newNode(real, image Number, height int) Number {
	if IsZero(image) {
		return real
	}
	return &Node{real: real, image: image, height: height}
}

// IsZero reports whether a is the additive identity.
func IsZero(a Number) bool {
	b, ok := a.(Base)
	return ok && isZeroBase(b)
}

// Real returns the real half of a, or a itself at height 0.
func Real(a Number) Number {
	if a, ok := a.(*Node); ok {
		return a.real
	}
	return a
}

// Image returns the imaginary half of a, or zero at height 0.
func Image(a Number) Number {
	if a, ok := a.(*Node); ok {
		return a.image
	}
	return Integer(0)
}

// NthImaginary returns the n-th basis unit. The 0th unit is 1 and the unit
// 2^k is the pure imaginary unit of height k+1; other units are built from
// the largest power of two in n and the unit of the remainder.
func NthImaginary(n uint64) Number {
	if n == 0 {
		return Integer(1)
	}
	k := bits.Len64(n) - 1
	return &Node{real: Integer(0), image: NthImaginary(n - 1<<k), height: k + 1}
}

// Add returns a + b.
func Add(a, b Number) Number {
	ha, hb := a.Height(), b.Height()
	switch {
	case ha == 0 && hb == 0:
		return addBase(a.(Base), b.(Base))
	case ha == hb:
		x, y := a.(*Node), b.(*Node)
		return newNode(Add(x.real, y.real), Add(x.image, y.image), ha)
	case ha > hb:
		x := a.(*Node)
		return newNode(Add(x.real, b), x.image, ha)
	default:
		y := b.(*Node)
		return newNode(Add(a, y.real), y.image, hb)
	}
}

// Sub returns a - b.
func Sub(a, b Number) Number {
	return Add(a, Negate(b))
}

// Negate returns -a.
func Negate(a Number) Number {
	switch a := a.(type) {
	case *Node:
		return &Node{real: Negate(a.real), image: Negate(a.image), height: a.height}
	case Base:
		return negateBase(a)
	default:
		panic(a)
	}
}

// Conjugate returns the conjugate of a, which negates every imaginary
// coefficient.
func Conjugate(a Number) Number {
	if a, ok := a.(*Node); ok {
		return &Node{real: Conjugate(a.real), image: Negate(a.image), height: a.height}
	}
	return a
}

// Mul returns a × b. The operand order matters from height 2.
func Mul(a, b Number) Number {
	ha, hb := a.Height(), b.Height()
	switch {
	case ha == 0 && hb == 0:
		return mulBase(a.(Base), b.(Base))
	case ha == hb:
		x, y := a.(*Node), b.(*Node)
		return newNode(
			Sub(Mul(x.real, y.real), Mul(Conjugate(y.image), x.image)),
			Add(Mul(y.image, x.real), Mul(x.image, Conjugate(y.real))),
			ha,
		)
	case ha > hb:
		x := a.(*Node)
		return newNode(Mul(x.real, b), Mul(x.image, Conjugate(b)), ha)
	default:
		y := b.(*Node)
		return newNode(Mul(a, y.real), Mul(y.image, a), hb)
	}
}

// SquareNorm returns the sum of the squares of all coefficients of a. It is
// zero only for the additive identity.
func SquareNorm(a Number) Base {
	switch a := a.(type) {
	case *Node:
		return addBase(SquareNorm(a.real), SquareNorm(a.image))
	case Base:
		return mulBase(a, a)
	default:
		panic(a)
	}
}

// Inverse returns conj(a)/|a|², failing with ErrDivisionByZero when a is
// zero.
func Inverse(a Number) (Number, error) {
	if b, ok := a.(Base); ok {
		return inverseBase(b)
	}
	n, err := inverseBase(SquareNorm(a))
	if err != nil {
		return nil, err
	}
	return Mul(Conjugate(a), n), nil
}

// Div returns a × inverse(b).
func Div(a, b Number) (Number, error) {
	x, err := Inverse(b)
	if err != nil {
		return nil, err
	}
	return Mul(a, x), nil
}

// Pow returns base raised to an integral exponent. A negative exponent
// inverts the base first, which fails for zero. Pow(x, 0) is 1 for every x.
func Pow(base Number, exponent Integer) (Number, error) {
	if !isFinite(float64(exponent)) {
		return nil, ErrNotFinite
	}
	if exponent < 0 {
		var err error
		if base, err = Inverse(base); err != nil {
			return nil, err
		}
		exponent = -exponent
	}
	var result Number = Integer(1)
	for e := float64(exponent); e > 0; e = math.Floor(e / 2) {
		if math.Mod(e, 2) == 1 {
			result = Mul(result, base)
		}
		if e > 1 {
			base = Mul(base, base)
		}
	}
	return result, nil
}

// Equal reports whether a and b are the same number.
func Equal(a, b Number) bool {
	if a.Height() != b.Height() {
		return false
	}
	switch a := a.(type) {
	case *Node:
		b := b.(*Node)
		return Equal(a.real, b.real) && Equal(a.image, b.image)
	case Base:
		return equalBase(a, b.(Base))
	default:
		return false
	}
}
