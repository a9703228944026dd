package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"

	"github.com/nion-lang/nion"
)

const name = "nion"

const version = "0.1.0"

var revision = "HEAD"

const (
	exitCodeOK = iota
	exitCodeErr
	exitCodeFlagParseErr
	exitCodeCompileErr
	exitCodeInputErr
	exitCodeDefaultErr
)

var errUnclosedBlock = errors.New("unclosed if block or do loop at the end of input")

type cli struct {
	inStream  io.Reader
	outStream io.Writer
	errStream io.Writer

	out         *trackWriter
	outputColor bool
	outputYAML  bool
	quiet       bool
	showStack   bool
	encoder     *encoder
	transcript  *transcript
	session     *nion.Session
	stack       []any
}

type flagopts struct {
	FromFile         string   `short:"f" long:"from-file" description:"load the program from a file"`
	Prelude          []string `long:"prelude" description:"evaluate a file before the program"`
	ShowStack        bool     `short:"s" long:"stack" description:"print the stack after each line"`
	Quiet            bool     `short:"q" long:"quiet" description:"do not print the final stack"`
	YAMLOutput       bool     `short:"y" long:"yaml-output" description:"output the stack as a YAML sequence"`
	ColorOutput      bool     `short:"C" long:"color-output" description:"output with colors even if piped"`
	MonochromeOutput bool     `short:"M" long:"monochrome-output" description:"output without colors"`
	Transcript       string   `long:"transcript" description:"append the lines and stacks to a file"`
	StepLimit        *int     `long:"step-limit" description:"stop a line after the number of steps"`
	Config           string   `long:"config" description:"load settings from a TOML file"`
	LogLevel         *int     `long:"log-level" description:"log verbosity from 0 to 5"`
	Version          bool     `short:"v" long:"version" description:"display version information"`
	Help             bool     `short:"h" long:"help" description:"display this help information"`
}

func (cli *cli) run(args []string) int {
	if err := cli.runInternal(args); err != nil {
		if _, ok := err.(interface{ isEmptyError() }); !ok {
			fmt.Fprintf(cli.errStream, "%s: %s\n", name, err)
		}
		if err, ok := err.(interface{ ExitCode() int }); ok {
			return err.ExitCode()
		}
		return exitCodeDefaultErr
	}
	return exitCodeOK
}

func (cli *cli) runInternal(args []string) (err error) {
	var opts flagopts
	if args, err = parseFlags(args, &opts); err != nil {
		return &flagParseError{err}
	}
	if opts.Help {
		fmt.Fprintf(cli.outStream, `%[1]s - stack calculator over the Cayley-Dickson numbers

Version: %s (rev: %s/%s)

Synopsis:
  %% %[1]s '3 4 1 e * +'
  %% %[1]s -f program.nion
  %% %[1]s < lines.nion

`,
			name, version, revision, runtime.Version())
		fmt.Fprint(cli.outStream, formatFlags(&opts))
		return nil
	}
	if opts.Version {
		fmt.Fprintf(cli.outStream, "%s %s (rev: %s/%s)\n", name, version, revision, runtime.Version())
		return nil
	}
	if len(args) > 1 || len(args) > 0 && opts.FromFile != "" {
		return &flagParseError{errors.New("too many arguments")}
	}
	configureLog(opts.LogLevel)
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}
	if err := cli.setup(&opts, cfg); err != nil {
		return err
	}
	defer cli.transcript.Close()
	for _, fname := range append(cfg.Prelude, opts.Prelude...) {
		logger.Infof("evaluating prelude %s", fname)
		if err := cli.evalFile(fname, false); err != nil {
			return err
		}
	}
	switch {
	case opts.FromFile != "":
		logger.Infof("evaluating %s", opts.FromFile)
		if err := cli.evalFile(opts.FromFile, true); err != nil {
			return err
		}
	case len(args) > 0:
		if err := cli.evalContents("<arg>", args[0], true); err != nil {
			return err
		}
	default:
		return cli.repl(cfg)
	}
	if cli.quiet {
		return nil
	}
	return cli.printStack(cli.stack)
}

func (cli *cli) setup(opts *flagopts, cfg *config) error {
	if opts.ColorOutput {
		cli.outputColor = true
	} else if opts.MonochromeOutput {
		cli.outputColor = false
	} else if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		cli.outputColor = false
	} else {
		cli.outputColor = isTTY(cli.outStream)
	}
	colors := os.Getenv("NION_COLORS")
	if colors == "" {
		colors = cfg.Colors
	}
	if colors != "" {
		if err := setColors(colors); err != nil {
			return err
		}
	}
	cli.outputYAML, cli.quiet = opts.YAMLOutput, opts.Quiet
	cli.showStack = opts.ShowStack || cfg.ShowStack
	cli.encoder = newEncoder(cli.outputColor)
	cli.out = &trackWriter{w: cli.outStream}

	limit := cfg.StepLimit
	if opts.StepLimit != nil {
		limit = *opts.StepLimit
	}
	cli.session = nion.NewSession(nion.WithOutput(cli.out), nion.WithStepLimit(limit))

	if opts.Transcript != "" {
		t, err := openTranscript(opts.Transcript, cfg.TranscriptTimeFormat)
		if err != nil {
			return &inputError{err}
		}
		cli.transcript = t
		if err := t.begin(); err != nil {
			return err
		}
	}
	return nil
}

func (cli *cli) evalFile(fname string, record bool) error {
	contents, err := readFile(fname)
	if err != nil {
		return err
	}
	return cli.evalContents(fname, contents, record)
}

// evalContents evaluates the whole contents as one line, which must not leave
// a block open.
func (cli *cli) evalContents(fname, contents string, record bool) error {
	stack, err := cli.session.Evaluate(contents, cli.stack)
	pending := cli.session.Pending()
	if record {
		if err := cli.transcript.record(contents, stack, pending, err); err != nil {
			return err
		}
	}
	if err != nil {
		return newEvalError(fname, contents, 0, err)
	}
	if pending {
		cli.session.Reset()
		return &evalError{fname, 0, errUnclosedBlock}
	}
	cli.stack = stack
	return nil
}

// repl evaluates the input line by line. An error is reported and the
// evaluation continues with the stack before the line.
func (cli *cli) repl(cfg *config) error {
	iter := newLineIter(cli.inStream)
	interactive := isTTY(cli.inStream)
	showStack := cli.showStack || interactive
	var failed error
	for {
		if interactive {
			prompt := cfg.Prompt
			if cli.session.Pending() {
				prompt = cfg.ContinuePrompt
			}
			fmt.Fprint(cli.outStream, prompt)
		}
		line, ok := iter.Next()
		if !ok {
			break
		}
		stack, err := cli.session.Evaluate(line, cli.stack)
		pending := cli.session.Pending()
		if err := cli.transcript.record(line, stack, pending, err); err != nil {
			return err
		}
		if err != nil {
			err = newEvalError("<stdin>", line, iter.Line(), err)
			logger.Debugf("line %d failed: %s", iter.Line(), err)
			fmt.Fprintf(cli.errStream, "%s: %s\n", name, err)
			failed = &emptyError{err}
			continue
		}
		cli.stack = stack
		if showStack && !pending {
			if err := cli.printStack(cli.stack); err != nil {
				return err
			}
		}
	}
	if interactive {
		fmt.Fprintln(cli.outStream)
	}
	if err := iter.Err(); err != nil {
		return &inputError{err}
	}
	if cli.session.Pending() {
		cli.session.Reset()
		return &evalError{"<stdin>", iter.Line(), errUnclosedBlock}
	}
	if !showStack && !cli.quiet {
		if err := cli.printStack(cli.stack); err != nil {
			return err
		}
	}
	return failed
}

func (cli *cli) printStack(stack []any) error {
	if err := cli.out.newline(); err != nil {
		return err
	}
	if cli.outputYAML {
		return encodeYAML(cli.out, stack)
	}
	return cli.encoder.marshal(stack, cli.out)
}

func isTTY(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// trackWriter remembers the last byte written, so that the stack starts on a
// new line after the output of the program.
type trackWriter struct {
	w    io.Writer
	last byte
}

func (w *trackWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		w.last = p[len(p)-1]
	}
	return w.w.Write(p)
}

func (w *trackWriter) newline() error {
	if w.last == 0 || w.last == '\n' {
		return nil
	}
	_, err := w.Write([]byte{'\n'})
	return err
}
