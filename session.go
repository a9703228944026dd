// Package nion implements a stack-based calculator language over an exact
// Cayley–Dickson numeric tower.
//
// A line is split into tokens, compiled to bytecode, and executed against a
// stack of numbers and strings:
//
//	s := nion.NewSession()
//	stack, err := s.Evaluate(": sq dup * ; 1 e 2 + sq", nil)
//	// nion.Render(stack) == "[3 4 1 e * +]"
//
// An if block or a do loop may span several lines; the lines are buffered
// until the block is closed, and Pending reports whether a line is waiting
// for more input.
package nion

import (
	"io"
	"os"
)

// Session holds the environment of words and variables shared by the
// evaluated lines. A Session must not be used from multiple goroutines
// concurrently.
type Session struct {
	compiler *compiler
	out      io.Writer
	limit    int
}

// NewSession creates a Session with an empty environment.
func NewSession(opts ...Option) *Session {
	s := &Session{compiler: newCompiler(newScope(nil)), out: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate compiles and runs a line against the stack, and returns the
// resulting stack. The argument slice is never modified.
//
// When the line leaves an if block or a do loop open, nothing runs and the
// stack is returned as is until a later line closes the block. When
// compilation or execution fails, the stack is returned as is and the
// definitions and variables of the failed lines are rolled back; output
// already written by the . and cr words is not.
func (s *Session) Evaluate(line string, stack []any) ([]any, error) {
	bc, err := s.compiler.compile(line)
	if err != nil {
		return stack, err
	}
	if bc == nil {
		return stack, nil
	}
	m := newMachine(bc, s.compiler.root, newStack(stack), s.out, s.limit)
	if err := m.run(); err != nil {
		s.compiler.rollback()
		return stack, err
	}
	s.compiler.commit()
	return m.stack.data, nil
}

// Pending reports whether an open if block or do loop waits for more lines.
func (s *Session) Pending() bool {
	return s.compiler.pending()
}

// Reset discards the lines buffered for an open block, along with the
// definitions and variables they introduced.
func (s *Session) Reset() {
	s.compiler.abort()
}
