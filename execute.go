package nion

import (
	"io"
	"strconv"

	"github.com/nion-lang/nion/tower"
)

type machine struct {
	stack  *stack
	main   []*code
	codes  []*code
	pc     int
	word   *word
	scope  *scope
	loops  []loop
	frames []frame
	out    io.Writer
	steps  int
	limit  int
}

type loop struct {
	index, limit tower.Integer
}

// frame is where a call returns to.
type frame struct {
	word *word
	pc   int
}

func newMachine(bc *bytecode, root *scope, stack *stack, out io.Writer, limit int) *machine {
	return &machine{stack: stack, main: bc.codes, codes: bc.codes, scope: root, out: out, limit: limit}
}

func (m *machine) run() error {
	for {
		pc := m.pc
		if pc < 0 || pc >= len(m.codes) {
			return &internalError{"program counter out of range: " + strconv.Itoa(pc)}
		}
		m.debugState(pc)
		code := m.codes[pc]
		m.pc++
		if m.limit > 0 {
			if m.steps++; m.steps > m.limit {
				return &stepLimitError{m.limit}
			}
		}
		switch code.op {
		case opend:
			return nil
		case oppush:
			m.stack.push(code.v)
		case opadd, opsub, opmul, opdiv, opmod, oppow, opeq, oplt, ople, opgt, opge:
			if err := m.stack.require(code.op, 2); err != nil {
				return err
			}
			r := m.stack.pop()
			v, err := binop(code.op, m.stack.pop(), r)
			if err != nil {
				return err
			}
			m.stack.push(v)
		case opimaginary:
			if err := m.stack.require(code.op, 1); err != nil {
				return err
			}
			v := m.stack.pop()
			n, ok := v.(tower.Integer)
			if !ok || !(n >= 0 && n < 1<<64) {
				return &imaginaryIndexError{v}
			}
			m.stack.push(tower.NthImaginary(uint64(n)))
		case opif:
			target, err := jumpTarget(code)
			if err != nil {
				return err
			}
			if err := m.stack.require(code.op, 1); err != nil {
				return err
			}
			if v, ok := m.stack.pop().(tower.Number); ok && tower.IsZero(v) {
				m.pc = target
			}
		case opelse:
			target, err := jumpTarget(code)
			if err != nil {
				return err
			}
			m.pc = target
		case opthen:
			// nop
		case opdo:
			if err := m.stack.require(code.op, 2); err != nil {
				return err
			}
			end, start := m.stack.pop(), m.stack.pop()
			limit, ok := end.(tower.Integer)
			if !ok || !tower.IsFinite(limit) {
				return &nonIntegerError{code.op.String(), end}
			}
			index, ok := start.(tower.Integer)
			if !ok || !tower.IsFinite(index) {
				return &nonIntegerError{code.op.String(), start}
			}
			m.loops = append(m.loops, loop{index, limit})
		case oploop:
			target, err := jumpTarget(code)
			if err != nil {
				return err
			}
			if len(m.loops) == 0 {
				return &internalError{"loop without do"}
			}
			l := &m.loops[len(m.loops)-1]
			if l.index++; l.index >= l.limit {
				m.loops = m.loops[:len(m.loops)-1]
			} else {
				m.pc = target
			}
		case opindex:
			if len(m.loops) == 0 {
				return &loopIndexError{}
			}
			m.stack.push(m.loops[len(m.loops)-1].index)
		case opprint:
			if err := m.stack.require(code.op, 1); err != nil {
				return err
			}
			if _, err := io.WriteString(m.out, printed(m.stack.pop())); err != nil {
				return err
			}
		case opcr:
			if _, err := io.WriteString(m.out, "\n"); err != nil {
				return err
			}
		case opdup:
			if err := m.stack.require(code.op, 1); err != nil {
				return err
			}
			m.stack.push(m.stack.peek(0))
		case opdrop:
			if err := m.stack.require(code.op, 1); err != nil {
				return err
			}
			m.stack.pop()
		case opswap:
			if err := m.stack.require(code.op, 2); err != nil {
				return err
			}
			b, a := m.stack.pop(), m.stack.pop()
			m.stack.push(b)
			m.stack.push(a)
		case oprot:
			if err := m.stack.require(code.op, 3); err != nil {
				return err
			}
			c, b, a := m.stack.pop(), m.stack.pop(), m.stack.pop()
			m.stack.push(b)
			m.stack.push(c)
			m.stack.push(a)
		case opmrot:
			if err := m.stack.require(code.op, 3); err != nil {
				return err
			}
			c, b, a := m.stack.pop(), m.stack.pop(), m.stack.pop()
			m.stack.push(c)
			m.stack.push(a)
			m.stack.push(b)
		case opover:
			if err := m.stack.require(code.op, 2); err != nil {
				return err
			}
			m.stack.push(m.stack.peek(1))
		case opclear:
			m.stack.clear()
		case opcall:
			if err := m.call(code.v.(string)); err != nil {
				return err
			}
		case opbind:
			if err := m.stack.require(code.op, 1); err != nil {
				return err
			}
			name := code.v.(string)
			s := m.scope.lookup(name)
			if s == nil {
				return &bindTargetError{name}
			}
			s.values[name] = m.stack.pop()
		case opret:
			if len(m.frames) == 0 {
				return &internalError{"return without a call"}
			}
			f := m.frames[len(m.frames)-1]
			m.frames = m.frames[:len(m.frames)-1]
			m.word, m.pc, m.scope = f.word, f.pc, m.scope.parent
			if f.word == nil {
				m.codes = m.main
			} else {
				m.codes = f.word.codes
			}
		default:
			return &internalError{"unknown opcode: " + code.op.String()}
		}
	}
}

// call enters a word, or pushes the value of a variable.
func (m *machine) call(name string) error {
	v, ok := m.scope.get(name)
	if !ok {
		return &internalError{"name vanished: " + name}
	}
	switch v := v.(type) {
	case *word:
		m.frames = append(m.frames, frame{m.word, m.pc})
		m.word, m.codes, m.pc = v, v.codes, 0
		m.scope = v.scope.clone(m.scope)
	case nil:
		return &unboundVariableError{name}
	default:
		m.stack.push(v)
	}
	return nil
}

func jumpTarget(code *code) (int, error) {
	target, ok := code.v.(int)
	if !ok || target == placeholder {
		return 0, &internalError{"unresolved jump at " + code.op.String()}
	}
	return target, nil
}
