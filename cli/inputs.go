package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// lineIter reads the input line by line, without the line terminators.
type lineIter struct {
	r    *bufio.Reader
	line int
	err  error
}

func newLineIter(in io.Reader) *lineIter {
	return &lineIter{r: bufio.NewReader(in)}
}

func (i *lineIter) Next() (string, bool) {
	if i.err != nil {
		return "", false
	}
	s, err := i.r.ReadString('\n')
	if err != nil {
		i.err = err
		if s == "" {
			return "", false
		}
	}
	i.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true
}

// Line returns the number of the last line returned by Next.
func (i *lineIter) Line() int {
	return i.line
}

// Err returns the read error, or nil at the end of the input.
func (i *lineIter) Err() error {
	if i.err == io.EOF {
		return nil
	}
	return i.err
}

func readFile(fname string) (string, error) {
	cnt, err := os.ReadFile(fname)
	if err != nil {
		return "", &inputError{err}
	}
	return string(cnt), nil
}
