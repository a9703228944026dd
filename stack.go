package nion

type stack struct {
	data []any
}

func newStack(xs []any) *stack {
	return &stack{data: append(make([]any, 0, len(xs)+8), xs...)}
}

func (s *stack) push(v any) {
	s.data = append(s.data, v)
}

func (s *stack) pop() any {
	v := s.data[len(s.data)-1]
	s.data[len(s.data)-1] = nil
	s.data = s.data[:len(s.data)-1]
	return v
}

// peek returns the value at depth i, where 0 is the top.
func (s *stack) peek(i int) any {
	return s.data[len(s.data)-1-i]
}

func (s *stack) len() int {
	return len(s.data)
}

// require checks that the operation can take n values.
func (s *stack) require(op opcode, n int) error {
	if len(s.data) < n {
		return &stackUnderflowError{op.String(), n, len(s.data)}
	}
	return nil
}

func (s *stack) clear() {
	s.data = s.data[:0]
}
