package nion

import (
	"encoding/json"
	"strconv"

	"github.com/nion-lang/nion/tower"
)

type tokenKind int

const (
	tokInteger tokenKind = iota
	tokFloat
	tokString
	tokWordClose
	tokBind
	tokWordOpen
	tokVariable
	tokWord
	tokKeyword
)

func (k tokenKind) String() string {
	switch k {
	case tokInteger:
		return "integer"
	case tokFloat:
		return "float"
	case tokString:
		return "string"
	case tokWordClose:
		return ";"
	case tokBind:
		return "bind"
	case tokWordOpen:
		return ":"
	case tokVariable:
		return "var"
	case tokWord:
		return "word"
	case tokKeyword:
		return "keyword"
	default:
		return "token(" + strconv.Itoa(int(k)) + ")"
	}
}

type token struct {
	kind   tokenKind
	offset int
	name   string // name of a word or a variable, source text otherwise
	value  any    // tower.Number, string or opcode
}

// lexer splits a line into tokens. Which names are words depends on the
// environment, so the lexer asks visible for the names bound before this line
// and remembers the names introduced earlier on the line.
type lexer struct {
	source  string
	offset  int
	visible func(string) bool
	names   map[string]struct{}
}

func tokenize(src string, visible func(string) bool) ([]*token, error) {
	l := &lexer{source: src, visible: visible, names: make(map[string]struct{})}
	var tokens []*token
	for {
		l.skipWhite()
		if l.offset == len(l.source) {
			return tokens, nil
		}
		t := l.next()
		if t == nil {
			return nil, &ParseError{Offset: l.offset, Token: field(l.source[l.offset:])}
		}
		tokens = append(tokens, t)
	}
}

func (l *lexer) next() *token {
	if t := l.scanNumber(); t != nil {
		return t
	}
	if t := l.scanString(); t != nil {
		return t
	}
	if t := l.scanWordClose(); t != nil {
		return t
	}
	if t := l.scanBind(); t != nil {
		return t
	}
	if t := l.scanWordOpen(); t != nil {
		return t
	}
	if t := l.scanVariable(); t != nil {
		return t
	}
	if t := l.scanWord(); t != nil {
		return t
	}
	return l.scanKeyword()
}

func (l *lexer) rest() string {
	return l.source[l.offset:]
}

func (l *lexer) skipWhite() {
	for l.offset < len(l.source) && isWhite(l.source[l.offset]) {
		l.offset++
	}
}

func (l *lexer) emit(kind tokenKind, end int, name string, value any) *token {
	t := &token{kind: kind, offset: l.offset, name: name, value: value}
	l.offset = end
	return t
}

func (l *lexer) scanNumber() *token {
	s := l.rest()
	n, float := matchNumber(s)
	if n == 0 {
		return nil
	}
	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return nil
	}
	kind := tokInteger
	if float {
		kind = tokFloat
	}
	return l.emit(kind, l.offset+n, s[:n], tower.NewFloat(f))
}

func (l *lexer) scanString() *token {
	s := l.rest()
	if s == "" || s[0] != '"' {
		return nil
	}
	i := 1
	for ; i < len(s); i++ {
		if s[i] == '\\' {
			i++
		} else if s[i] == '"' {
			break
		}
	}
	if i >= len(s) {
		return nil
	}
	var v string
	if err := json.Unmarshal([]byte(s[:i+1]), &v); err != nil {
		return nil
	}
	return l.emit(tokString, l.offset+i+1, s[:i+1], v)
}

func (l *lexer) scanWordClose() *token {
	if s := l.rest(); s == "" || s[0] != ';' {
		return nil
	}
	return l.emit(tokWordClose, l.offset+1, ";", nil)
}

func (l *lexer) scanBind() *token {
	s := l.rest()
	if s == "" || s[0] != '!' {
		return nil
	}
	name, end := l.nameAfter(1)
	if name == "" || !l.isVisible(name) {
		return nil
	}
	return l.emit(tokBind, end, name, nil)
}

func (l *lexer) scanWordOpen() *token {
	s := l.rest()
	if s == "" || s[0] != ':' {
		return nil
	}
	name, end := l.nameAfter(1)
	if !isDefinableName(name) {
		return nil
	}
	l.names[name] = struct{}{}
	return l.emit(tokWordOpen, end, name, nil)
}

func (l *lexer) scanVariable() *token {
	s := l.rest()
	if len(s) < 4 || s[:3] != "var" || !isWhite(s[3]) {
		return nil
	}
	name, end := l.nameAfter(3)
	if !isDefinableName(name) {
		return nil
	}
	switch name {
	case "var", "!", ":", ";":
		return nil
	}
	l.names[name] = struct{}{}
	return l.emit(tokVariable, end, name, nil)
}

func (l *lexer) scanWord() *token {
	name := field(l.rest())
	if !l.isVisible(name) {
		return nil
	}
	return l.emit(tokWord, l.offset+len(name), name, nil)
}

func (l *lexer) scanKeyword() *token {
	s := l.rest()
	for _, kw := range keywords {
		if len(s) >= len(kw.name) && s[:len(kw.name)] == kw.name {
			return l.emit(tokKeyword, l.offset+len(kw.name), kw.name, kw.op)
		}
	}
	return nil
}

// nameAfter returns the name following the prefix of length n, skipping
// whitespace in between, and the offset where the name ends.
func (l *lexer) nameAfter(n int) (string, int) {
	i := l.offset + n
	for i < len(l.source) && isWhite(l.source[i]) {
		i++
	}
	name := field(l.source[i:])
	return name, i + len(name)
}

func (l *lexer) isVisible(name string) bool {
	if _, ok := l.names[name]; ok {
		return true
	}
	return l.visible != nil && l.visible(name)
}

// isDefinableName reports whether a word or a variable may have the name. It
// must not read as a number or shadow a keyword.
func isDefinableName(name string) bool {
	if name == "" || isKeyword(name) {
		return false
	}
	n, _ := matchNumber(name)
	return n != len(name)
}

// matchNumber returns the length of the numeric literal at the start of s, and
// whether it is a float literal. A float needs digits on both sides of the
// point; the exponent part is taken only when it is complete.
func matchNumber(s string) (int, bool) {
	var i int
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := scanDigits(s, i)
	if j == i {
		return 0, false
	}
	if j+1 >= len(s) || s[j] != '.' || !isNumber(s[j+1]) {
		return j, false
	}
	k := scanDigits(s, j+1)
	if k < len(s) && (s[k] == 'e' || s[k] == 'E') {
		m := k + 1
		if m < len(s) && (s[m] == '+' || s[m] == '-') {
			m++
		}
		if n := scanDigits(s, m); n > m {
			k = n
		}
	}
	return k, true
}

func scanDigits(s string, i int) int {
	for i < len(s) && isNumber(s[i]) {
		i++
	}
	return i
}

// field returns the leading run of non-whitespace bytes.
func field(s string) string {
	for i := 0; i < len(s); i++ {
		if isWhite(s[i]) {
			return s[:i]
		}
	}
	return s
}

func isWhite(ch byte) bool {
	switch ch {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}

func isNumber(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// ParseError represents a line which cannot be split into tokens.
type ParseError struct {
	Offset int    // the byte offset where no token matches
	Token  string // the source text at the offset up to whitespace
}

func (err *ParseError) Error() string {
	return "unexpected token at offset " + strconv.Itoa(err.Offset) + ": " + strconv.Quote(err.Token)
}
