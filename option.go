package nion

import "io"

// Option configures a Session.
type Option func(*Session)

// WithOutput sets the writer for the . and cr words. The default is
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		s.out = w
	}
}

// WithStepLimit limits the number of instructions executed in one
// evaluation, which turns a runaway loop or recursion into an error. The
// limit is disabled when n is zero or negative, which is the default.
func WithStepLimit(n int) Option {
	return func(s *Session) {
		s.limit = n
	}
}
