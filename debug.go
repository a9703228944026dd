//go:build nion_debug

package nion

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	debug    bool
	debugOut io.Writer
)

func init() {
	if out := os.Getenv("NION_DEBUG"); out != "" {
		debug = true
		if out == "stdout" {
			debugOut = os.Stdout
		} else {
			debugOut = os.Stderr
		}
	}
}

func (c *compiler) debugCodes(codes []*code) {
	if !debug {
		return
	}
	for i, code := range codes {
		fmt.Fprintf(debugOut, "\t%d\t%s\t%s\n", i, formatOp(code.op), debugOperand(code))
	}
	for name, v := range c.root.values {
		if w, ok := v.(*word); ok {
			fmt.Fprintf(debugOut, "\t## %s\n", name)
			for i, code := range w.codes {
				fmt.Fprintf(debugOut, "\t%d\t%s\t%s\n", i, formatOp(code.op), debugOperand(code))
			}
		}
	}
	fmt.Fprintln(debugOut, "\t"+strings.Repeat("-", 20))
}

func (m *machine) debugState(pc int) {
	if !debug {
		return
	}
	var sb strings.Builder
	code := m.codes[pc]
	fmt.Fprintf(&sb, "\t%d\t%s\t%s\t|", pc, formatOp(code.op), debugOperand(code))
	for _, v := range m.stack.data {
		sb.WriteByte('\t')
		sb.WriteString(Marshal(v))
	}
	if m.word != nil {
		sb.WriteString("\t\t\t## " + m.word.name)
	}
	fmt.Fprintln(debugOut, sb.String())
}

func formatOp(c opcode) string {
	return c.String() + strings.Repeat(" ", max(15-len(c.String()), 1))
}

func debugOperand(c *code) string {
	switch v := c.v.(type) {
	case nil:
		return ""
	case int:
		return fmt.Sprint(v)
	case string:
		if c.op != oppush {
			return v
		}
	}
	return Marshal(c.v)
}
