package nion

import "strconv"

type code struct {
	op opcode
	v  any
}

type opcode int

const (
	opend opcode = iota
	oppush
	opadd
	opsub
	opmul
	opdiv
	opmod
	oppow
	opeq
	oplt
	ople
	opgt
	opge
	opimaginary
	opif
	opelse
	opthen
	opdo
	oploop
	opindex
	opprint
	opcr
	opdup
	opdrop
	opswap
	oprot
	opmrot
	opover
	opclear
	opcall
	opbind
	opret
)

// placeholder is the operand of a forward jump which is not resolved yet.
const placeholder = -1

func (op opcode) String() string {
	switch op {
	case opend:
		return "end"
	case oppush:
		return "push"
	case opadd:
		return "+"
	case opsub:
		return "-"
	case opmul:
		return "*"
	case opdiv:
		return "/"
	case opmod:
		return "%"
	case oppow:
		return "^"
	case opeq:
		return "="
	case oplt:
		return "<"
	case ople:
		return "<="
	case opgt:
		return ">"
	case opge:
		return ">="
	case opimaginary:
		return "e"
	case opif:
		return "if"
	case opelse:
		return "else"
	case opthen:
		return "then"
	case opdo:
		return "do"
	case oploop:
		return "loop"
	case opindex:
		return "i"
	case opprint:
		return "."
	case opcr:
		return "cr"
	case opdup:
		return "dup"
	case opdrop:
		return "drop"
	case opswap:
		return "swap"
	case oprot:
		return "rot"
	case opmrot:
		return "-rot"
	case opover:
		return "over"
	case opclear:
		return "clear"
	case opcall:
		return "call"
	case opbind:
		return "bind"
	case opret:
		return "ret"
	default:
		return "opcode(" + strconv.Itoa(int(op)) + ")"
	}
}

// keywords lists the built-in words in matching order. A longer keyword
// sharing a prefix with a later one must come first.
var keywords = []struct {
	name string
	op   opcode
}{
	{"if", opif},
	{"else", opelse},
	{"then", opthen},
	{"do", opdo},
	{"loop", oploop},
	{"dup", opdup},
	{"drop", opdrop},
	{"swap", opswap},
	{"rot", oprot},
	{"-rot", opmrot},
	{"over", opover},
	{"clear", opclear},
	{"+", opadd},
	{"-", opsub},
	{"*", opmul},
	{"/", opdiv},
	{"%", opmod},
	{"^", oppow},
	{"=", opeq},
	{"<=", ople},
	{"<", oplt},
	{">=", opge},
	{">", opgt},
	{"cr", opcr},
	{"e", opimaginary},
	{"i", opindex},
	{".", opprint},
}

func isKeyword(name string) bool {
	for _, kw := range keywords {
		if kw.name == name {
			return true
		}
	}
	return false
}
