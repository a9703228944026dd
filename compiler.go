package nion

type compiler struct {
	root   *scope
	scope  *scope
	codes  []*code
	blocks []block
	word   *word
	saved  map[string]any
}

type bytecode struct {
	codes []*code
}

type blockKind int

const (
	blockIf blockKind = iota
	blockElse
	blockDo
)

// block is an open control structure waiting for its closing keyword. For if
// and else, pc is the jump to backpatch; for do, it is the start of the body.
type block struct {
	kind blockKind
	pc   int
}

func newCompiler(root *scope) *compiler {
	return &compiler{root: root, scope: root}
}

// compile compiles a line, continuing the buffer of an if block or a do loop
// left open by the previous lines. It returns nil bytecode while a block is
// still open. On failure, the root frame is rolled back to the state before
// the first line of the unit and the open buffer is discarded.
func (c *compiler) compile(src string) (*bytecode, error) {
	if !c.pending() {
		c.saved = c.root.snapshot()
	}
	tokens, err := tokenize(src, c.visible)
	if err != nil {
		c.abort()
		return nil, err
	}
	for _, t := range tokens {
		if err := c.compileToken(t); err != nil {
			c.abort()
			return nil, err
		}
	}
	if c.word != nil {
		err := &unterminatedWordError{c.word.name}
		c.abort()
		return nil, err
	}
	if c.pending() {
		return nil, nil
	}
	c.append(&code{op: opend})
	bc := &bytecode{c.codes}
	c.codes = nil
	c.debugCodes(bc.codes)
	return bc, nil
}

func (c *compiler) pending() bool {
	return len(c.blocks) > 0
}

func (c *compiler) visible(name string) bool {
	return c.scope.lookup(name) != nil
}

// abort discards the open buffer and rolls the root frame back.
func (c *compiler) abort() {
	c.reset()
	c.rollback()
}

func (c *compiler) reset() {
	c.codes, c.blocks, c.word, c.scope = nil, nil, nil, c.root
}

// commit drops the snapshot once the unit has run.
func (c *compiler) commit() {
	c.saved = nil
}

func (c *compiler) rollback() {
	if c.saved != nil {
		c.root.restore(c.saved)
		c.saved = nil
	}
}

func (c *compiler) compileToken(t *token) error {
	switch t.kind {
	case tokInteger, tokFloat, tokString:
		c.append(&code{op: oppush, v: t.value})
	case tokWordOpen:
		return c.compileWordOpen(t.name)
	case tokWordClose:
		return c.compileWordClose()
	case tokVariable:
		if c.scope.lookup(t.name) == nil {
			c.root.values[t.name] = nil
		}
	case tokBind:
		c.append(&code{op: opbind, v: t.name})
	case tokWord:
		c.append(&code{op: opcall, v: t.name})
	case tokKeyword:
		return c.compileKeyword(t.value.(opcode))
	default:
		return &internalError{"unknown token: " + t.kind.String()}
	}
	return nil
}

func (c *compiler) compileWordOpen(name string) error {
	if c.word != nil || c.pending() {
		return &nestedDefinitionError{name}
	}
	w := &word{name: name, scope: newScope(c.scope)}
	c.scope.values[name] = w
	c.word, c.scope = w, w.scope
	return nil
}

func (c *compiler) compileWordClose() error {
	if c.word == nil {
		return &blockError{";", "a definition"}
	}
	if c.pending() {
		return &unclosedBlockError{c.word.name}
	}
	c.append(&code{op: opret})
	c.word, c.scope = nil, c.scope.parent
	return nil
}

func (c *compiler) compileKeyword(op opcode) error {
	switch op {
	case opif:
		c.pushBlock(blockIf)
		c.append(&code{op: opif, v: placeholder})
	case opelse:
		b, err := c.popBlock("else", "an if block", blockIf)
		if err != nil {
			return err
		}
		c.pushBlock(blockElse)
		c.append(&code{op: opelse, v: placeholder})
		c.patch(b, c.pc())
	case opthen:
		b, err := c.popBlock("then", "an if block", blockIf, blockElse)
		if err != nil {
			return err
		}
		c.patch(b, c.pc())
		c.append(&code{op: opthen})
	case opdo:
		c.append(&code{op: opdo})
		c.pushBlock(blockDo)
	case oploop:
		b, err := c.popBlock("loop", "a do loop", blockDo)
		if err != nil {
			return err
		}
		c.append(&code{op: oploop, v: b.pc})
	default:
		c.append(&code{op: op})
	}
	return nil
}

func (c *compiler) pushBlock(kind blockKind) {
	c.blocks = append(c.blocks, block{kind, c.pc()})
}

func (c *compiler) popBlock(token, name string, kinds ...blockKind) (block, error) {
	if len(c.blocks) > 0 {
		b := c.blocks[len(c.blocks)-1]
		for _, k := range kinds {
			if b.kind == k {
				c.blocks = c.blocks[:len(c.blocks)-1]
				return b, nil
			}
		}
	}
	return block{}, &blockError{token, name}
}

// patch resolves the forward jump of an if or else block.
func (c *compiler) patch(b block, target int) {
	c.buffer()[b.pc].v = target
}

func (c *compiler) buffer() []*code {
	if c.word != nil {
		return c.word.codes
	}
	return c.codes
}

func (c *compiler) append(code *code) {
	if c.word != nil {
		c.word.codes = append(c.word.codes, code)
	} else {
		c.codes = append(c.codes, code)
	}
}

func (c *compiler) pc() int {
	return len(c.buffer())
}
