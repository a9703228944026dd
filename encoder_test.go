package nion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nion-lang/nion"
	"github.com/nion-lang/nion/tower"
)

func rational(t *testing.T, n, d tower.Integer) tower.Base {
	t.Helper()
	v, err := tower.MakeRational(n, d)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestMarshal(t *testing.T) {
	testCases := []struct {
		value    any
		expected string
	}{
		{nil, "unset"},
		{tower.Integer(42), "42"},
		{tower.Integer(-3), "-3"},
		{tower.Integer(1e21), "1000000000000000000000"},
		{tower.Float(0.5), "0.5"},
		{tower.Float(1e300), "1.0e+300"},
		{rational(t, 1, 2), "1 2 /"},
		{rational(t, 2, -6), "-1 3 /"},
		{tower.NthImaginary(1), "1 e"},
		{tower.NthImaginary(3), "3 e"},
		{tower.Add(tower.Integer(3), tower.Mul(tower.Integer(4), tower.NthImaginary(1))), "3 4 1 e * +"},
		{tower.Sub(tower.Integer(0), tower.NthImaginary(2)), "-1 2 e *"},
		{"", `""`},
		{"foo", `"foo"`},
		{"a\"b\n", `"a\"b\n"`},
		{"\a\x00/é", `"\u0007\u0000/é"`},
		{"\t\\\xff", `"\t\\\ufffd"`},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, nion.Marshal(tc.value))
		})
	}
	assert.PanicsWithValue(t, "invalid value: bool (true)", func() {
		nion.Marshal(true)
	})
}

func TestRender(t *testing.T) {
	testCases := []struct {
		stack    []any
		expected string
	}{
		{nil, "[]"},
		{[]any{tower.Integer(1)}, "[1]"},
		{[]any{tower.Integer(1), rational(t, 1, 2), "foo"}, `[1, 1 2 /, "foo"]`},
		{[]any{tower.NthImaginary(4), tower.Float(-2.25)}, "[4 e, -2.25]"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, nion.Render(tc.stack))
		})
	}
}
