package cli

import (
	"bytes"
	"io"

	"github.com/nion-lang/nion"
)

// encoder writes a stack in the bracketed form of nion.Render, optionally
// with colors.
type encoder struct {
	w     *bytes.Buffer
	color bool
}

func newEncoder(color bool) *encoder {
	// reuse the buffer in multiple calls of marshal
	return &encoder{w: new(bytes.Buffer), color: color}
}

func (e *encoder) marshal(stack []any, w io.Writer) error {
	e.encodeStack(stack)
	e.w.WriteByte('\n')
	_, err := w.Write(e.w.Bytes())
	e.w.Reset()
	return err
}

func (e *encoder) encodeStack(xs []any) {
	e.write("[", bracketColor)
	for i, x := range xs {
		if i > 0 {
			e.w.WriteString(", ")
		}
		e.encode(x)
	}
	e.write("]", bracketColor)
}

func (e *encoder) encode(v any) {
	switch nion.TypeOf(v) {
	case "string":
		e.write(nion.Marshal(v), stringColor)
	default:
		e.write(nion.Marshal(v), numberColor)
	}
}

func (e *encoder) write(s string, color []byte) {
	if !e.color || color == nil {
		e.w.WriteString(s)
		return
	}
	e.w.Write(color)
	e.w.WriteString(s)
	e.w.Write(resetColor)
}
