package nion_test

import (
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nion-lang/nion"
	"github.com/nion-lang/nion/tower"
)

func ExampleSession_Evaluate() {
	s := nion.NewSession()
	stack, err := s.Evaluate(": sq dup * ; 1 e 2 + sq 10 3 /", nil)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(nion.Render(stack))

	// Output:
	// [3 4 1 e * +, 10 3 /]
}

func ExampleSession_Pending() {
	s := nion.NewSession()
	var stack []any
	for _, line := range []string{"0 3 do", `i . ", " .`, "loop 42"} {
		var err error
		if stack, err = s.Evaluate(line, stack); err != nil {
			log.Fatalln(err)
		}
		fmt.Println(s.Pending())
	}
	fmt.Println(nion.Render(stack))

	// Output:
	// true
	// true
	// 0, 1, 2, false
	// [42]
}

func TestSessionEvaluate(t *testing.T) {
	testCases := []struct {
		name   string
		src    string
		input  []any
		stack  string
		output string
		err    string
	}{
		{name: "add", src: "3 4 +", stack: "[7]"},
		{name: "add to input", src: "2 +", input: []any{tower.Integer(1)}, stack: "[3]"},
		{name: "prefix split", src: "1 12+", stack: "[13]"},
		{name: "signed literals", src: "12 +3 -4", stack: "[12, 3, -4]"},
		{name: "exact division", src: "10 3 /", stack: "[10 3 /]"},
		{name: "division to integer", src: "10 5 /", stack: "[2]"},
		{name: "floats", src: "0.5 0.25 +", stack: "[0.75]"},
		{name: "integral float", src: "1.5 1.5 +", stack: "[3]"},
		{name: "float times rational", src: "0.5 1 3 / *", stack: "[0.16666666666666666]"},
		{name: "modulo", src: "7 3 % -7 3 %", stack: "[1, -1]"},
		{name: "power", src: "2 10 ^", stack: "[1024]"},
		{name: "negative power", src: "2 -1 ^", stack: "[1 2 /]"},
		{name: "imaginary", src: "1 e 1 e *", stack: "[-1]"},
		{name: "complex", src: "1 e 2 +", stack: "[2 1 e +]"},
		{name: "quaternion", src: "2 e 3 e *", stack: "[1 e]"},
		{name: "quaternion anticommute", src: "3 e 2 e *", stack: "[-1 1 e *]"},
		{name: "quaternion inverse", src: "3 e 2 e /", stack: "[1 e]"},
		{name: "sedenion zero divisor", src: "3 e 10 e + 6 e 15 e - *", stack: "[0]"},
		{name: "equal", src: "1 0 = 2 2 =", stack: "[0, 1]"},
		{name: "equal rational and float", src: "1 2 / 0.5 =", stack: "[1]"},
		{name: "equal strings", src: `"a" "a" = "a" "b" =`, stack: "[1, 0]"},
		{name: "less", src: "2 3 < 3 2 < 2 2 <=", stack: "[1, 0, 1]"},
		{name: "greater", src: "3 2 > 2 3 > 2 2 >=", stack: "[1, 0, 1]"},
		{name: "concat", src: `"foo" "bar" +`, stack: `["foobar"]`},
		{name: "escaped string", src: `"a\tb\"c"`, stack: `["a\tb\"c"]`},
		{name: "dup", src: "1 dup", stack: "[1, 1]"},
		{name: "drop", src: "1 2 drop", stack: "[1]"},
		{name: "swap", src: "1 2 swap", stack: "[2, 1]"},
		{name: "rot", src: "1 2 3 rot", stack: "[2, 3, 1]"},
		{name: "-rot", src: "1 2 3 -rot", stack: "[3, 1, 2]"},
		{name: "over", src: "1 2 over", stack: "[1, 2, 1]"},
		{name: "clear", src: "1 2 clear", input: []any{"x"}, stack: "[]"},
		{name: "print", src: "1 2 / . cr", stack: "[]", output: "1 2 /\n"},
		{name: "print string", src: `"hi" .`, stack: "[]", output: "hi"},
		{name: "if true", src: "1 if 10 else 20 then", stack: "[10]"},
		{name: "if false", src: "0 if 10 else 20 then", stack: "[20]"},
		{name: "if without else", src: "0 if 10 then", stack: "[]"},
		{name: "if string", src: `"" if 1 then`, stack: "[1]"},
		{name: "if zero float", src: "0.0 if 1 then", stack: "[]"},
		{name: "nested if", src: "1 0 if 10 else if 20 else 30 then then", stack: "[20]"},
		{name: "do loop", src: "0 5 do i . loop", stack: "[]", output: "01234"},
		{name: "do loop runs once", src: "5 0 do loop", stack: "[]"},
		{name: "do loop body once", src: "5 0 do i loop", stack: "[5]"},
		{name: "nested do loop", src: "0 3 do 0 2 do i . loop loop", stack: "[]", output: "010101"},
		{name: "sum", src: "0 1 11 do i + loop", stack: "[55]"},
		{name: "define", src: ": sq dup * ; 5 sq .", stack: "[]", output: "25"},
		{name: "define twice", src: ": f 1 + ; 1 f f", stack: "[3]"},
		{name: "recursion", src: ": fact dup 1 > if dup 1 - fact * then ; 5 fact", stack: "[120]"},
		{name: "loop index in word", src: ": p i . ; 0 3 do p loop", stack: "[]", output: "012"},
		{name: "redefine", src: ": f 1 ; : f 2 ; f", stack: "[2]"},
		{name: "variable", src: "var x 5 !x x x *", stack: "[25]"},
		{name: "variable string", src: `var s "abc" !s s s +`, stack: `["abcabc"]`},
		{name: "variable in word", src: "var n : inc n 1 + !n ; 0 !n inc inc n", stack: "[2]"},
		{name: "bind word", src: ": f 1 ; 2 !f f", stack: "[2]"},
		{
			name: "underflow", src: "+", input: []any{tower.Integer(1)},
			stack: "[1]", err: "stack underflow: + needs 2 values but got 1",
		},
		{
			name: "underflow rot", src: "1 rot",
			stack: "[]", err: "stack underflow: rot needs 3 values but got 1",
		},
		{
			name: "division by zero", src: "1 0 /",
			stack: "[]", err: "cannot divide integer (1) by: integer (0)",
		},
		{
			name: "power of zero", src: "0 -1 ^",
			stack: "[]", err: "cannot divide integer (0) by: integer (-1)",
		},
		{
			name: "modulo by zero", src: "1 0 %",
			stack: "[]", err: "cannot modulo integer (1) by: integer (0)",
		},
		{
			name: "modulo rational", src: "1 2 / 2 %",
			stack: "[]", err: "% expects an integer but got: rational (1 2 /)",
		},
		{
			name: "non integer exponent", src: "2 0.5 ^",
			stack: "[]", err: "^ expects an integer but got: float (0.5)",
		},
		{
			name: "compare rational", src: "1 2 / 1 <",
			stack: "[]", err: "< expects an integer but got: rational (1 2 /)",
		},
		{
			name: "add string", src: `1 "a" +`,
			stack: "[]", err: `cannot add: integer (1) and string ("a")`,
		},
		{
			name: "subtract strings", src: `"a" "b" -`,
			stack: "[]", err: `cannot subtract: string ("a") and string ("b")`,
		},
		{
			name: "compare string", src: `1 "a" =`,
			stack: "[]", err: `cannot compare: integer (1) and string ("a")`,
		},
		{
			name: "imaginary float", src: "1.5 e",
			stack: "[]", err: "invalid imaginary index: float (1.5)",
		},
		{
			name: "imaginary negative", src: "-1 e",
			stack: "[]", err: "invalid imaginary index: integer (-1)",
		},
		{
			name: "loop index", src: "i",
			stack: "[]", err: "loop index used outside of a do loop",
		},
		{
			name: "do rational", src: "1 2 / 3 do loop",
			stack: "[]", err: "do expects an integer but got: rational (1 2 /)",
		},
		{
			name: "unset variable", src: "var x x",
			stack: "[]", err: "variable not set: x",
		},
		{
			name: "output before error", src: "1 . 0 0 /",
			stack: "[]", output: "1", err: "cannot divide integer (0) by: integer (0)",
		},
		{
			name: "parse error", src: "123.456_789",
			stack: "[]", err: `unexpected token at offset 7: "_789"`,
		},
		{
			name: "unknown word", src: "1 foo",
			stack: "[]", err: `unexpected token at offset 2: "foo"`,
		},
		{
			name: "else outside if", src: "1 else",
			stack: "[]", err: "unexpected else: not inside an if block",
		},
		{
			name: "loop closing if", src: "1 if loop",
			stack: "[]", err: "unexpected loop: not inside a do loop",
		},
		{
			name: "definition in block", src: "1 if : f ; then",
			stack: "[]", err: "cannot define f inside a block or another definition",
		},
		{
			name: "unclosed block in definition", src: ": f 1 if ;",
			stack: "[]", err: "unclosed if block or do loop in definition of f",
		},
		{
			name: "unterminated definition", src: ": f 1",
			stack: "[]", err: "definition of f is not closed by ;",
		},
		{
			name: "overflow", src: "1.0e308 10 *",
			stack: "[]", err: "number overflow: integer (1000000000000000000000 ...) * integer (10)",
		},
		{
			name: "overflow before power", src: "2 1.0e308 10 * ^",
			stack: "[]", err: "number overflow: integer (1000000000000000000000 ...) * integer (10)",
		},
		{
			name: "overflow of sum", src: "1.0e308 dup + e",
			stack: "[]", err: "number overflow: integer (1000000000000000000000 ...) + integer (1000000000000000000000 ...)",
		},
		{
			name: "overflow of power", src: "10 1.0e300 ^",
			stack: "[]", err: "number overflow: integer (10) ^ integer (1000000000000000000000 ...)",
		},
		{
			name: "large imaginary index", src: "1.0e300 e",
			stack: "[]", err: "invalid imaginary index: integer (1000000000000000000000 ...)",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			s := nion.NewSession(nion.WithOutput(&out))
			input := append([]any(nil), tc.input...)
			stack, err := s.Evaluate(tc.src, input)
			if tc.err == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.err)
				assert.False(t, nion.IsInternal(err))
			}
			if tc.stack == "[]" {
				assert.Empty(t, stack)
			} else {
				assert.Equal(t, tc.stack, nion.Render(stack))
			}
			assert.Equal(t, tc.output, out.String())
			assert.Equal(t, tc.input, input)
			assert.False(t, s.Pending())
		})
	}
}

func TestSessionInputNotModified(t *testing.T) {
	s := nion.NewSession()
	input := make([]any, 2, 10)
	input[0], input[1] = tower.Integer(1), tower.Integer(2)
	stack, err := s.Evaluate("+ 3 4 swap", input)
	require.NoError(t, err)
	assert.Equal(t, "[3, 4, 3]", nion.Render(stack))
	assert.Equal(t, []any{tower.Integer(1), tower.Integer(2)}, input)

	stack, err = s.Evaluate("drop drop drop drop", input)
	assert.Error(t, err)
	assert.Equal(t, input, stack)
}

func TestSessionRollback(t *testing.T) {
	var out strings.Builder
	s := nion.NewSession(nion.WithOutput(&out))
	stack, err := s.Evaluate("var x 1 !x : f 10 ;", nil)
	require.NoError(t, err)
	assert.Empty(t, stack)

	_, err = s.Evaluate("2 !x : f 20 ; : g 30 ; var y 0 0 /", nil)
	require.Error(t, err)

	stack, err = s.Evaluate("x f", nil)
	require.NoError(t, err)
	assert.Equal(t, "[1, 10]", nion.Render(stack))

	for _, src := range []string{"g", "y", "!y"} {
		_, err = s.Evaluate(src, nil)
		var pe *nion.ParseError
		require.ErrorAs(t, err, &pe, src)
		assert.Equal(t, 0, pe.Offset)
		assert.Equal(t, src, pe.Token)
	}

	_, err = s.Evaluate(": h 1 ; else", nil)
	require.Error(t, err)
	_, err = s.Evaluate("h", nil)
	assert.Error(t, err)

	_, err = s.Evaluate(": h 1", nil)
	require.Error(t, err)
	_, err = s.Evaluate("h", nil)
	assert.Error(t, err)
}

func TestSessionPending(t *testing.T) {
	var out strings.Builder
	s := nion.NewSession(nion.WithOutput(&out))
	input := []any{tower.Integer(7)}

	stack, err := s.Evaluate("var z 1 if", input)
	require.NoError(t, err)
	assert.True(t, s.Pending())
	assert.Equal(t, input, stack)

	stack, err = s.Evaluate("2 else", stack)
	require.NoError(t, err)
	assert.True(t, s.Pending())
	assert.Equal(t, input, stack)

	stack, err = s.Evaluate("3 then 4 !z z", stack)
	require.NoError(t, err)
	assert.False(t, s.Pending())
	assert.Equal(t, "[7, 2, 4]", nion.Render(stack))

	t.Run("failure discards the buffer", func(t *testing.T) {
		s := nion.NewSession(nion.WithOutput(&out))
		_, err := s.Evaluate("var w 0 3 do", nil)
		require.NoError(t, err)
		assert.True(t, s.Pending())
		_, err = s.Evaluate("i then", nil)
		require.EqualError(t, err, "unexpected then: not inside an if block")
		assert.False(t, s.Pending())
		_, err = s.Evaluate("w", nil)
		assert.Error(t, err)
	})

	t.Run("definition while pending", func(t *testing.T) {
		s := nion.NewSession(nion.WithOutput(&out))
		_, err := s.Evaluate("1 if", nil)
		require.NoError(t, err)
		_, err = s.Evaluate(": f ; then", nil)
		require.EqualError(t, err, "cannot define f inside a block or another definition")
		assert.False(t, s.Pending())
	})

	t.Run("reset", func(t *testing.T) {
		s := nion.NewSession(nion.WithOutput(&out))
		_, err := s.Evaluate("var v 1 if", nil)
		require.NoError(t, err)
		s.Reset()
		assert.False(t, s.Pending())
		_, err = s.Evaluate("then", nil)
		require.EqualError(t, err, "unexpected then: not inside an if block")
		_, err = s.Evaluate("v", nil)
		assert.Error(t, err)
	})

	t.Run("reset keeps committed lines", func(t *testing.T) {
		s := nion.NewSession(nion.WithOutput(&out))
		_, err := s.Evaluate(": one 1 ;", nil)
		require.NoError(t, err)
		s.Reset()
		stack, err := s.Evaluate("one", nil)
		require.NoError(t, err)
		assert.Equal(t, "[1]", nion.Render(stack))
	})
}

func TestSessionStepLimit(t *testing.T) {
	s := nion.NewSession(nion.WithStepLimit(100))
	_, err := s.Evaluate(": f f ; f", nil)
	require.EqualError(t, err, "step limit exceeded: 100")
	assert.False(t, nion.IsInternal(err))

	stack, err := s.Evaluate("0 1 11 do i + loop", nil)
	require.NoError(t, err)
	assert.Equal(t, "[55]", nion.Render(stack))

	_, err = s.Evaluate("0 1 1000 do i + loop", nil)
	assert.EqualError(t, err, "step limit exceeded: 100")
}

func TestCanonicalFormRoundTrip(t *testing.T) {
	s := nion.NewSession()
	for _, src := range []string{
		"0",
		"-42",
		"1 2 / -1 *",
		"1.5",
		"-2.25",
		"0.0000001",
		"1 e",
		"1 10 e +",
		"1 2 / 10 e * 1 +",
		"3 4 e * 2 3 / 7 e * + 1.5 + -1 2 e * +",
		"1 e 1 - 2 e 3 e + * 4 e *",
		"1 1000 e +",
		"1.0e308",
		"1.0e308 -1 *",
		"1.5e300 1 e *",
		"1.0e-300",
	} {
		stack, err := s.Evaluate(src, nil)
		require.NoError(t, err, src)
		require.Len(t, stack, 1, src)
		x := stack[0].(tower.Number)

		stack, err = s.Evaluate(nion.Marshal(x), nil)
		require.NoError(t, err, nion.Marshal(x))
		require.Len(t, stack, 1, src)
		y := stack[0].(tower.Number)
		assert.True(t, tower.Equal(x, y), "%s: %s != %s", src, x, y)
		if diff := cmp.Diff(x.String(), y.String()); diff != "" {
			t.Errorf("%s:\n%s", src, diff)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	s := nion.NewSession()
	for _, str := range []string{"", "a b", "q\"x\\", "tab\tnl\n", "\a\x00\x1f", "é/😀"} {
		stack, err := s.Evaluate(nion.Marshal(str), nil)
		require.NoError(t, err, nion.Marshal(str))
		assert.Equal(t, []any{str}, stack)
	}
}

func TestSessionOverflow(t *testing.T) {
	s := nion.NewSession(nion.WithStepLimit(1000))
	for _, src := range []string{"10 308 ^ 10 *", "2 10 308 ^ 10 * ^", "10 308 ^ dup +"} {
		stack, err := s.Evaluate(src, nil)
		require.Error(t, err, src)
		assert.Contains(t, err.Error(), "number overflow: ", src)
		assert.Empty(t, stack)
	}
	stack, err := s.Evaluate("10 308 ^", nil)
	require.NoError(t, err)
	require.Len(t, stack, 1)
	stack, err = s.Evaluate(nion.Marshal(stack[0]), nil)
	require.NoError(t, err)
	assert.Len(t, stack, 1)
}
