package nion

import "github.com/nion-lang/nion/tower"

func funcOpEq(l, r any) (any, error) {
	return binopTypeSwitch(l, r,
		func(l, r tower.Number) (any, error) { return truth(tower.Equal(l, r)), nil },
		func(l, r string) (any, error) { return truth(l == r), nil },
		typeErrorFallback("compare"),
	)
}

func funcOpCompare(op opcode, l, r any, f func(int) bool) (any, error) {
	return binopTypeSwitch(l, r,
		func(x, y tower.Number) (any, error) {
			a, b, err := integers(op, x, y)
			if err != nil {
				return nil, err
			}
			return truth(f(tower.Compare(a, b))), nil
		},
		nil,
		typeErrorFallback("compare"),
	)
}

func integers(op opcode, l, r tower.Number) (tower.Integer, tower.Integer, error) {
	a, ok := l.(tower.Integer)
	if !ok {
		return 0, 0, &nonIntegerError{op.String(), l}
	}
	b, ok := r.(tower.Integer)
	if !ok {
		return 0, 0, &nonIntegerError{op.String(), r}
	}
	return a, b, nil
}

func truth(b bool) tower.Integer {
	if b {
		return 1
	}
	return 0
}
