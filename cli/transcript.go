package cli

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"

	"github.com/nion-lang/nion"
)

// transcript appends the input lines and the resulting stacks to a file.
// A session starts with a header line holding the time.
type transcript struct {
	w      io.WriteCloser
	format string
	now    func() time.Time
}

func openTranscript(fname, format string) (*transcript, error) {
	f, err := os.OpenFile(fname, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	return &transcript{w: f, format: format, now: time.Now}, nil
}

func (t *transcript) begin() error {
	if t == nil {
		return nil
	}
	_, err := io.WriteString(t.w, "# "+timefmt.Format(t.now(), t.format)+"\n")
	return err
}

// record writes a line, followed by the stack once the line completes a
// unit, or by the error.
func (t *transcript) record(line string, stack []any, pending bool, err error) error {
	if t == nil {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteByte('\n')
	if err != nil {
		sb.WriteString("!! ")
		sb.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n!! "))
		sb.WriteByte('\n')
	} else if !pending {
		sb.WriteString("=> ")
		sb.WriteString(nion.Render(stack))
		sb.WriteByte('\n')
	}
	_, werr := io.WriteString(t.w, sb.String())
	return werr
}

func (t *transcript) Close() error {
	if t == nil {
		return nil
	}
	return t.w.Close()
}
