package cli

import (
	"bytes"
	"io"
	"os"
)

// Config holds the streams of a nion run.
type Config struct {
	// Stdin carries the lines of the REPL when neither a program argument nor
	// -f is given. A nil Stdin reads as empty.
	Stdin io.Reader
	// Stdout receives what the program prints with . and cr, followed by the
	// stack. A nil Stdout discards it.
	Stdout io.Writer
	// Stderr receives the error messages. A nil Stderr discards them.
	Stderr io.Writer
}

// Run evaluates a program as the nion command does with the arguments, which
// exclude the command name, and returns the exit status.
func (cfg *Config) Run(args []string) int {
	cli := &cli{inStream: cfg.Stdin, outStream: cfg.Stdout, errStream: cfg.Stderr}
	if cli.inStream == nil {
		cli.inStream = bytes.NewReader(nil)
	}
	if cli.outStream == nil {
		cli.outStream = io.Discard
	}
	if cli.errStream == nil {
		cli.errStream = io.Discard
	}
	return cli.run(args)
}

// Run runs nion over the standard streams and os.Args.
func Run() int {
	cfg := Config{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	return cfg.Run(os.Args[1:])
}
