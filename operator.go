package nion

import (
	"errors"

	"github.com/nion-lang/nion/tower"
)

func binopTypeSwitch(
	l, r any,
	callbackNumbers func(tower.Number, tower.Number) (any, error),
	callbackStrings func(string, string) (any, error),
	fallback func(any, any) (any, error),
) (any, error) {
	switch l := l.(type) {
	case tower.Number:
		if r, ok := r.(tower.Number); ok {
			return callbackNumbers(l, r)
		}
	case string:
		if r, ok := r.(string); ok && callbackStrings != nil {
			return callbackStrings(l, r)
		}
	}
	return fallback(l, r)
}

func typeErrorFallback(name string) func(any, any) (any, error) {
	return func(l, r any) (any, error) {
		return nil, &binopTypeError{name, l, r}
	}
}

// binop applies a binary operator. A number result must be finite.
func binop(op opcode, l, r any) (any, error) {
	v, err := arith(op, l, r)
	if n, ok := v.(tower.Number); ok && err == nil && !tower.IsFinite(n) {
		return nil, &overflowError{op.String(), l, r}
	}
	return v, err
}

func arith(op opcode, l, r any) (any, error) {
	switch op {
	case opadd:
		return funcOpAdd(l, r)
	case opsub:
		return funcOpSub(l, r)
	case opmul:
		return funcOpMul(l, r)
	case opdiv:
		return funcOpDiv(l, r)
	case opmod:
		return funcOpMod(l, r)
	case oppow:
		return funcOpPow(l, r)
	case opeq:
		return funcOpEq(l, r)
	case oplt:
		return funcOpCompare(op, l, r, func(c int) bool { return c < 0 })
	case ople:
		return funcOpCompare(op, l, r, func(c int) bool { return c <= 0 })
	case opgt:
		return funcOpCompare(op, l, r, func(c int) bool { return c > 0 })
	case opge:
		return funcOpCompare(op, l, r, func(c int) bool { return c >= 0 })
	default:
		return nil, &internalError{"not a binary operator: " + op.String()}
	}
}

func funcOpAdd(l, r any) (any, error) {
	return binopTypeSwitch(l, r,
		func(l, r tower.Number) (any, error) { return tower.Add(l, r), nil },
		func(l, r string) (any, error) { return l + r, nil },
		typeErrorFallback("add"),
	)
}

func funcOpSub(l, r any) (any, error) {
	return binopTypeSwitch(l, r,
		func(l, r tower.Number) (any, error) { return tower.Sub(l, r), nil },
		nil,
		typeErrorFallback("subtract"),
	)
}

func funcOpMul(l, r any) (any, error) {
	return binopTypeSwitch(l, r,
		func(l, r tower.Number) (any, error) { return tower.Mul(l, r), nil },
		nil,
		typeErrorFallback("multiply"),
	)
}

func funcOpDiv(l, r any) (any, error) {
	return binopTypeSwitch(l, r,
		func(x, y tower.Number) (any, error) {
			v, err := tower.Div(x, y)
			if errors.Is(err, tower.ErrDivisionByZero) {
				return nil, &zeroDivisionError{l, r}
			}
			return v, err
		},
		nil,
		typeErrorFallback("divide"),
	)
}

func funcOpMod(l, r any) (any, error) {
	return binopTypeSwitch(l, r,
		func(x, y tower.Number) (any, error) {
			a, b, err := integers(opmod, x, y)
			if err != nil {
				return nil, err
			}
			v, err := tower.Mod(a, b)
			if errors.Is(err, tower.ErrDivisionByZero) {
				return nil, &zeroModuloError{l, r}
			}
			return v, err
		},
		nil,
		typeErrorFallback("modulo"),
	)
}

func funcOpPow(l, r any) (any, error) {
	return binopTypeSwitch(l, r,
		func(x, y tower.Number) (any, error) {
			n, ok := y.(tower.Integer)
			if !ok {
				return nil, &nonIntegerError{oppow.String(), y}
			}
			v, err := tower.Pow(x, n)
			if errors.Is(err, tower.ErrDivisionByZero) {
				return nil, &zeroDivisionError{l, r}
			}
			return v, err
		},
		nil,
		typeErrorFallback("raise"),
	)
}
