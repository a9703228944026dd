package nion

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nion-lang/nion/tower"
)

// Marshal returns the printed form of a value: the canonical form of a number,
// which evaluates back to the same number, or a quoted string.
func Marshal(v any) string {
	var sb strings.Builder
	(&encoder{w: &sb}).encode(v)
	return sb.String()
}

// Render returns the bracketed form of a stack, bottom first, like
// [1, 1 2 /, "foo"].
func Render(stack []any) string {
	var sb strings.Builder
	(&encoder{w: &sb}).encodeStack(stack)
	return sb.String()
}

type encoder struct {
	w interface {
		io.Writer
		io.ByteWriter
		io.StringWriter
	}
	buf [64]byte
}

func (e *encoder) encode(v any) {
	switch v := v.(type) {
	case nil:
		e.w.WriteString("unset")
	case tower.Integer:
		e.w.Write(strconv.AppendFloat(e.buf[:0], float64(v), 'f', -1, 64))
	case tower.Number:
		e.w.WriteString(v.String())
	case string:
		e.encodeString(v)
	default:
		panic(fmt.Sprintf("invalid value: %[1]T (%[1]v)", v))
	}
}

// encodeString writes s as a JSON string literal, which the lexer reads back.
func (e *encoder) encodeString(s string) {
	e.w.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if ' ' <= b && b <= '~' && b != '"' && b != '\\' {
				i++
				continue
			}
			if start < i {
				e.w.WriteString(s[start:i])
			}
			switch b {
			case '"':
				e.w.WriteString(`\"`)
			case '\\':
				e.w.WriteString(`\\`)
			case '\b':
				e.w.WriteString(`\b`)
			case '\f':
				e.w.WriteString(`\f`)
			case '\n':
				e.w.WriteString(`\n`)
			case '\r':
				e.w.WriteString(`\r`)
			case '\t':
				e.w.WriteString(`\t`)
			default:
				const hex = "0123456789abcdef"
				e.w.WriteString(`\u00`)
				e.w.WriteByte(hex[b>>4])
				e.w.WriteByte(hex[b&0xF])
			}
			i++
			start = i
			continue
		}
		c, size := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && size == 1 {
			if start < i {
				e.w.WriteString(s[start:i])
			}
			e.w.WriteString(`\ufffd`)
			i += size
			start = i
			continue
		}
		i += size
	}
	if start < len(s) {
		e.w.WriteString(s[start:])
	}
	e.w.WriteByte('"')
}

func (e *encoder) encodeStack(xs []any) {
	e.w.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			e.w.WriteString(", ")
		}
		e.encode(x)
	}
	e.w.WriteByte(']')
}

// printed returns a value as the . word shows it: strings unquoted and numbers
// in the canonical form.
func printed(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return Marshal(v)
}
