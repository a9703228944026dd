package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/nion-lang/nion"
)

type emptyError struct {
	err error
}

func (*emptyError) Error() string {
	return ""
}

func (*emptyError) isEmptyError() {}

func (err *emptyError) ExitCode() int {
	if err, ok := err.err.(interface{ ExitCode() int }); ok {
		return err.ExitCode()
	}
	return exitCodeDefaultErr
}

type flagParseError struct {
	err error
}

func (err *flagParseError) Error() string {
	return err.err.Error()
}

func (*flagParseError) ExitCode() int {
	return exitCodeFlagParseErr
}

type inputError struct {
	err error
}

func (err *inputError) Error() string {
	return err.err.Error()
}

func (err *inputError) Unwrap() error {
	return err.err
}

func (*inputError) ExitCode() int {
	return exitCodeInputErr
}

type configError struct {
	fname string
	err   error
}

func (err *configError) Error() string {
	return "invalid config: " + err.fname + ": " + err.err.Error()
}

func (*configError) ExitCode() int {
	return exitCodeFlagParseErr
}

// programParseError shows a parse error with the line of the program and a
// caret under the offending token. The line is the number of the lines
// preceding the contents, for the lines read one by one.
type programParseError struct {
	fname, contents string
	line            int
	err             *nion.ParseError
}

func (err *programParseError) Error() string {
	linestr, line, column := getLineByOffset(err.contents, err.err.Offset+1)
	if line += err.line; err.fname != "<arg>" || containsNewline(err.contents) {
		return fmt.Sprintf("invalid program: %s:%d\n%s  %s",
			err.fname, line, formatLineInfo(linestr, line, column), err.err)
	}
	return fmt.Sprintf("invalid program: %s\n    %s\n    %*c  %s",
		err.contents, linestr, column+1, '^', err.err)
}

func (*programParseError) ExitCode() int {
	return exitCodeCompileErr
}

type evalError struct {
	fname string
	line  int
	err   error
}

func (err *evalError) Error() string {
	switch {
	case err.fname == "<arg>":
		return err.err.Error()
	case err.line == 0:
		return err.fname + ": " + err.err.Error()
	default:
		return err.fname + ":" + strconv.Itoa(err.line) + ": " + err.err.Error()
	}
}

func (err *evalError) ExitCode() int {
	if nion.IsInternal(err.err) {
		return exitCodeDefaultErr
	}
	return exitCodeErr
}

// newEvalError wraps an error of evaluating the contents. The line is the
// position of the contents read line by line, or 0 for a whole file.
func newEvalError(fname, contents string, line int, err error) error {
	var pe *nion.ParseError
	if errors.As(err, &pe) {
		return &programParseError{fname, contents, max(line-1, 0), pe}
	}
	return &evalError{fname, line, err}
}

func getLineByOffset(str string, offset int) (linestr string, line, column int) {
	ss := &stringScanner{str, 0}
	for {
		str, start, ok := ss.next()
		if !ok {
			offset -= start
			break
		}
		line++
		linestr = str
		if ss.offset >= offset {
			offset -= start
			break
		}
	}
	offset = min(max(offset-1, 0), len(linestr))
	if offset > 48 {
		skip := len(trimLastInvalidRune(linestr[:offset-48]))
		linestr = linestr[skip:]
		offset -= skip
	}
	linestr = trimLastInvalidRune(linestr[:min(64, len(linestr))])
	if offset < len(linestr) {
		offset = len(trimLastInvalidRune(linestr[:offset]))
	} else {
		offset = len(linestr)
	}
	column = runewidth.StringWidth(linestr[:offset])
	return
}

func trimLastInvalidRune(s string) string {
	for i := len(s) - 1; i >= 0 && i > len(s)-utf8.UTFMax; i-- {
		if b := s[i]; b < utf8.RuneSelf {
			return s[:i+1]
		} else if utf8.RuneStart(b) {
			if r, _ := utf8.DecodeRuneInString(s[i:]); r == utf8.RuneError {
				return s[:i]
			}
			break
		}
	}
	return s
}

func formatLineInfo(linestr string, line, column int) string {
	l := strconv.Itoa(line)
	return fmt.Sprintf("    %s | %s\n    %*c", l, linestr, column+len(l)+4, '^')
}

type stringScanner struct {
	str    string
	offset int
}

func (ss *stringScanner) next() (line string, start int, ok bool) {
	if ss.offset == len(ss.str) {
		return
	}
	start, ok = ss.offset, true
	line = ss.str[start:]
	i := indexNewline(line)
	if i < 0 {
		ss.offset = len(ss.str)
		return
	}
	line = line[:i]
	if strings.HasPrefix(ss.str[start+i:], "\r\n") {
		i++
	}
	ss.offset += i + 1
	return
}

// Faster than strings.ContainsAny(str, "\r\n").
func containsNewline(str string) bool {
	return strings.IndexByte(str, '\n') >= 0 ||
		strings.IndexByte(str, '\r') >= 0
}

// Faster than strings.IndexAny(str, "\r\n").
func indexNewline(str string) (i int) {
	if i = strings.IndexByte(str, '\n'); i >= 0 {
		str = str[:i]
	}
	if j := strings.IndexByte(str, '\r'); j >= 0 {
		i = j
	}
	return
}
