package tower

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func e(n uint64) Number {
	return NthImaginary(n)
}

func TestNthImaginaryHeight(t *testing.T) {
	for _, tc := range []struct {
		n      uint64
		height int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {7, 3}, {8, 4}, {15, 4}, {16, 5},
	} {
		assert.Equal(t, tc.height, e(tc.n).Height(), "height of e%d", tc.n)
	}
	assert.Equal(t, Integer(1), e(0))
}

func TestRealImage(t *testing.T) {
	half := Rational{1, 2}
	assert.Equal(t, Integer(1), Real(Integer(1)))
	assert.Equal(t, Float(1.5), Real(Float(1.5)))
	assert.Equal(t, half, Real(half))
	assert.Equal(t, Integer(0), Real(e(1)))
	assert.Equal(t, Integer(0), Real(e(3)))
	assert.Equal(t, Integer(1), Real(Add(e(1), Integer(1))))
	assert.True(t, Equal(e(1), Real(Add(e(1), e(3)))))

	assert.Equal(t, Integer(0), Image(Integer(1)))
	assert.Equal(t, Integer(0), Image(half))
	assert.Equal(t, Integer(1), Image(e(1)))
	assert.Equal(t, Integer(1), Image(e(2)))
	assert.True(t, Equal(e(1), Image(e(3))))
	assert.True(t, Equal(e(1), Image(Add(e(1), e(3)))))
}

func TestAlgebraIdentities(t *testing.T) {
	minusOne := Integer(-1)

	t.Run("complex", func(t *testing.T) {
		assert.Equal(t, minusOne, Mul(e(1), e(1)))
	})

	t.Run("quaternion", func(t *testing.T) {
		assert.Equal(t, minusOne, Mul(e(2), e(2)))
		assert.Equal(t, minusOne, Mul(e(3), e(3)))
		assert.Equal(t, minusOne, Mul(e(1), Mul(e(2), e(3))))
		assert.True(t, Equal(Mul(e(1), e(2)), Negate(Mul(e(2), e(1)))))
		assert.Equal(t, Integer(0), Add(Mul(e(2), e(3)), Mul(e(3), e(2))))
	})

	t.Run("octonion", func(t *testing.T) {
		assert.Equal(t, Integer(0), Add(
			Mul(Mul(e(2), e(3)), e(6)),
			Mul(e(2), Mul(e(3), e(6))),
		))
		for n := uint64(1); n < 8; n++ {
			assert.Equal(t, minusOne, Mul(e(n), e(n)), "e%d²", n)
		}
	})

	t.Run("sedenion zero divisors", func(t *testing.T) {
		assert.Equal(t, Integer(0), Mul(Add(e(3), e(10)), Sub(e(6), e(15))))
	})
}

func TestAddSimplifies(t *testing.T) {
	assert.Equal(t, Integer(0), Sub(e(1), e(1)))
	assert.Equal(t, Integer(0), Sub(e(10), e(10)))
	assert.Equal(t, Integer(2), Sub(Add(e(5), Integer(2)), e(5)))
}

func TestConjugate(t *testing.T) {
	assert.Equal(t, Integer(3), Conjugate(Integer(3)))
	x := Add(Integer(1), Add(e(1), e(2)))
	assert.Equal(t, "1 -1 1 e * + -1 2 e * +", Conjugate(x).String())
	assert.Equal(t, Integer(3), Mul(x, Conjugate(x)))
}

func TestSquareNorm(t *testing.T) {
	assert.Equal(t, Integer(0), SquareNorm(Integer(0)))
	assert.Equal(t, Integer(1), SquareNorm(e(7)))
	x := Add(Integer(3), Mul(Integer(4), e(5)))
	assert.Equal(t, Integer(25), SquareNorm(x))
	assert.Equal(t, Rational{1, 4}, SquareNorm(Rational{1, 2}))
}

func TestInverse(t *testing.T) {
	for _, tc := range []struct {
		input, expected Number
	}{
		{Integer(1), Integer(1)},
		{Integer(2), Rational{1, 2}},
		{e(1), Negate(e(1))},
		{e(6), Negate(e(6))},
		{Add(Integer(1), e(1)), Add(Rational{1, 2}, Mul(Rational{-1, 2}, e(1)))},
	} {
		got, err := Inverse(tc.input)
		require.NoError(t, err)
		assert.True(t, Equal(tc.expected, got), "inverse of %s: got %s", tc.input, got)
	}

	_, err := Inverse(Integer(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDiv(t *testing.T) {
	_, err := Div(Integer(1), Integer(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	got, err := Div(e(3), e(2))
	require.NoError(t, err)
	assert.True(t, Equal(e(1), got), "got %s", got)

	got, err = Div(Integer(10), Integer(3))
	require.NoError(t, err)
	assert.Equal(t, Rational{10, 3}, got)
}

func TestPow(t *testing.T) {
	for _, tc := range []struct {
		base     Number
		exponent Integer
		expected Number
	}{
		{Integer(0), 1000000000, Integer(0)},
		{Integer(0), 0, Integer(1)},
		{e(1), 0, Integer(1)},
		{Integer(2), 10, Integer(1024)},
		{Float(0.5), -1, Integer(2)},
		{Integer(2), -2, Rational{1, 4}},
		{e(1), 4, Integer(1)},
		{e(1), 5, e(1)},
		{e(1), -1, Negate(e(1))},
		{e(11111111), 12, Integer(1)},
		{Integer(1), 1e30, Integer(1)},
	} {
		got, err := Pow(tc.base, tc.exponent)
		require.NoError(t, err)
		assert.True(t, Equal(tc.expected, got), "%s ^ %s: got %s", tc.base, tc.exponent, got)
	}

	_, err := Pow(Integer(0), -10)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Pow(Integer(2), Integer(math.Inf(1)))
	assert.ErrorIs(t, err, ErrNotFinite)
	_, err = Pow(Integer(2), Integer(math.NaN()))
	assert.ErrorIs(t, err, ErrNotFinite)

	got, err := Pow(Integer(10), 1e308)
	require.NoError(t, err)
	assert.False(t, IsFinite(got))
}

func TestPowNegativeExponent(t *testing.T) {
	for _, x := range []Number{Integer(3), Rational{-2, 7}, Add(Integer(1), e(2)), e(9)} {
		for n := Integer(1); n <= 5; n++ {
			got, err := Pow(x, -n)
			require.NoError(t, err)
			inv, err := Inverse(x)
			require.NoError(t, err)
			expected, err := Pow(inv, n)
			require.NoError(t, err)
			assert.True(t, Equal(expected, got), "%s ^ -%s", x, n)
		}
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Integer(1), Integer(1)))
	assert.False(t, Equal(Integer(1), Integer(2)))
	assert.True(t, Equal(Rational{1, 2}, Float(0.5)))
	assert.False(t, Equal(Integer(1), e(1)))
	assert.False(t, Equal(e(1), e(2)))
	assert.True(t, Equal(Add(e(3), e(10)), Add(e(10), e(3))))
}

func TestNumberString(t *testing.T) {
	testCases := []struct {
		value    Number
		expected string
	}{
		{Integer(0), "0"},
		{Float(1.5), "1.5"},
		{Rational{2, 3}, "2 3 /"},
		{e(1), "1 e"},
		{e(2), "2 e"},
		{e(3), "3 e"},
		{e(10), "10 e"},
		{Negate(e(1)), "-1 1 e *"},
		{Add(Integer(1), e(10)), "1 10 e +"},
		{Add(Integer(1), Mul(Rational{1, 2}, e(10))), "1 1 2 / 10 e * +"},
		{Add(e(3), e(1)), "1 e 3 e +"},
	}
	var got []string
	var expected []string
	for _, tc := range testCases {
		got = append(got, tc.value.String())
		expected = append(expected, tc.expected)
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Error("canonical strings:\n" + diff)
	}
}
