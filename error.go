package nion

import (
	"errors"
	"fmt"
)

type blockError struct {
	token, block string
}

func (err *blockError) Error() string {
	return fmt.Sprintf("unexpected %s: not inside %s", err.token, err.block)
}

type nestedDefinitionError struct {
	name string
}

func (err *nestedDefinitionError) Error() string {
	return fmt.Sprintf("cannot define %s inside a block or another definition", err.name)
}

type unclosedBlockError struct {
	name string
}

func (err *unclosedBlockError) Error() string {
	return fmt.Sprintf("unclosed if block or do loop in definition of %s", err.name)
}

type unterminatedWordError struct {
	name string
}

func (err *unterminatedWordError) Error() string {
	return fmt.Sprintf("definition of %s is not closed by ;", err.name)
}

type stackUnderflowError struct {
	name       string
	need, have int
}

func (err *stackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow: %s needs %d values but got %d", err.name, err.need, err.have)
}

type binopTypeError struct {
	name string
	l, r any
}

func (err *binopTypeError) Error() string {
	return fmt.Sprintf("cannot %s: %s and %s", err.name, typeErrorPreview(err.l), typeErrorPreview(err.r))
}

type zeroDivisionError struct {
	l, r any
}

func (err *zeroDivisionError) Error() string {
	return fmt.Sprintf("cannot divide %s by: %s", typeErrorPreview(err.l), typeErrorPreview(err.r))
}

type zeroModuloError struct {
	l, r any
}

func (err *zeroModuloError) Error() string {
	return fmt.Sprintf("cannot modulo %s by: %s", typeErrorPreview(err.l), typeErrorPreview(err.r))
}

type overflowError struct {
	name string
	l, r any
}

func (err *overflowError) Error() string {
	return fmt.Sprintf("number overflow: %s %s %s", typeErrorPreview(err.l), err.name, typeErrorPreview(err.r))
}

type nonIntegerError struct {
	name string
	v    any
}

func (err *nonIntegerError) Error() string {
	return fmt.Sprintf("%s expects an integer but got: %s", err.name, typeErrorPreview(err.v))
}

type imaginaryIndexError struct {
	v any
}

func (err *imaginaryIndexError) Error() string {
	return fmt.Sprintf("invalid imaginary index: %s", typeErrorPreview(err.v))
}

type loopIndexError struct{}

func (*loopIndexError) Error() string {
	return "loop index used outside of a do loop"
}

type unboundVariableError struct {
	name string
}

func (err *unboundVariableError) Error() string {
	return fmt.Sprintf("variable not set: %s", err.name)
}

type bindTargetError struct {
	name string
}

func (err *bindTargetError) Error() string {
	return fmt.Sprintf("cannot bind undeclared name: %s", err.name)
}

type stepLimitError struct {
	limit int
}

func (err *stepLimitError) Error() string {
	return fmt.Sprintf("step limit exceeded: %d", err.limit)
}

// internalError reports a broken invariant of the compiled code, which is a
// bug rather than a mistake in the program.
type internalError struct {
	message string
}

func (err *internalError) Error() string {
	return "internal error: " + err.message
}

// IsInternal reports whether err is caused by an inconsistent state of the
// evaluator rather than by the evaluated program.
func IsInternal(err error) bool {
	var e *internalError
	return errors.As(err, &e)
}

func typeErrorPreview(v any) string {
	return TypeOf(v) + preview(v)
}

func preview(v any) string {
	if v == nil {
		return ""
	}
	s, l := Marshal(v), 25
	if len(s) > l {
		s = s[:l-3] + " ..."
	}
	return " (" + s + ")"
}
