// Package lox contains a CLI-driven engine for reading lox source, running
// it through the scan/parse/evaluate pipeline, and displaying the result,
// continuously until the user quits.
package lox

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/lox/internal/diag"
	"github.com/dekarrin/lox/internal/input"
	"github.com/dekarrin/lox/internal/syntax"
	"github.com/dekarrin/rosed"
)

// Engine contains the things needed to run the interpreter from an
// interactive shell attached to an input stream and an output stream, or
// over a source file as a single unit.
type Engine struct {
	in          input.Reader
	out         *bufio.Writer
	rep         *diag.Console
	cfg         Config
	printTree   bool
	interactive bool
}

// Options control how New builds the Engine.
type Options struct {
	// Config holds the shell settings, normally from LoadConfig.
	Config Config

	// ForceDirect forces reading directly from the input stream as opposed
	// to using GNU readline based routines, even when attached to a TTY.
	ForceDirect bool

	// PrintTree makes the engine print the parsed expression tree instead
	// of evaluating it.
	PrintTree bool
}

// New creates a new engine ready to operate on the given input, output, and
// diagnostic streams. It will immediately open a buffered writer on the
// output stream and, if the input stream is attached to a terminal, a
// readline-based line reader on the input stream.
//
// If nil is given for the input stream, stdin is used. If nil is given for
// the output stream, stdout is used. If nil is given for the diagnostic
// stream, stderr is used.
func New(inputStream io.Reader, outputStream io.Writer, diagStream io.Writer, opts Options) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}
	if diagStream == nil {
		diagStream = os.Stderr
	}

	eng := &Engine{
		out:       bufio.NewWriter(outputStream),
		rep:       diag.NewConsole(diagStream),
		cfg:       opts.Config,
		printTree: opts.PrintTree,
	}

	useReadline := !opts.ForceDirect && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		var err error
		eng.in, err = input.NewInteractiveReader(eng.cfg.Prompt, eng.cfg.HistoryFile)
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
		eng.interactive = true
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// Close cleans up the engine's input reader and flushes pending output. It
// must be called before the engine is disposed of.
func (eng *Engine) Close() error {
	flushErr := eng.out.Flush()
	closeErr := eng.in.Close()

	if closeErr != nil {
		return closeErr
	}
	return flushErr
}

// RunFile reads the entire contents of the file at path as one source unit
// and runs the pipeline over it once. The returned error is non-nil only for
// failures to read the file itself; scan, parse, and runtime errors are
// reported on the diagnostic stream and reflected by HadError.
func (eng *Engine) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	eng.run(string(data))
	return eng.out.Flush()
}

// RunPrompt reads one line of input at a time, runs the pipeline over each
// line, and prints the result, until end of input or the literal line
// "exit". Errors in one line are reported and do not end the session.
func (eng *Engine) RunPrompt() error {
	eng.writeWrapped(fmt.Sprintf("lox interpreter. Enter an expression to evaluate it, or %q to leave.", "exit"))

	for {
		line, err := eng.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}

		if !eng.interactive {
			// no readline echo in direct mode, so show the prompt manually
			// after the fact to keep transcripts readable
			eng.writeLine(eng.cfg.Prompt + line)
		}

		eng.run(line)

		// a bad line must not poison the next one
		eng.rep.Reset()
	}
}

// HadError returns whether any diagnostic has been reported for the current
// unit of input.
func (eng *Engine) HadError() bool {
	return eng.rep.HadError()
}

// run sends one unit of source through the full pipeline and prints the
// resulting value, or reports whatever diagnostic stopped it.
func (eng *Engine) run(source string) {
	sc := syntax.NewScanner(source, eng.rep)
	tokens := sc.ScanTokens()

	p := syntax.NewParser(tokens, eng.rep)
	expr, err := p.Parse()
	if err != nil {
		// already reported by the parser
		return
	}
	if eng.rep.HadError() {
		// scan errors alone don't stop the parser, but they mean the token
		// stream is incomplete; don't evaluate a guess
		return
	}

	if eng.printTree {
		eng.writeLine(expr.String())
		return
	}

	val, err := syntax.Evaluate(expr)
	if err != nil {
		var rtErr *syntax.RuntimeError
		if errors.As(err, &rtErr) {
			eng.rep.Report(rtErr.Line(), "", rtErr.Message())
		} else {
			eng.rep.Report(0, "", err.Error())
		}
		return
	}

	eng.writeLine(val.String())
}

func (eng *Engine) writeLine(s string) {
	fmt.Fprintf(eng.out, "%s\n", s)
	eng.out.Flush()
}

// writeWrapped writes informational shell text wrapped to the configured
// width.
func (eng *Engine) writeWrapped(s string) {
	eng.writeLine(rosed.Edit(s).Wrap(eng.cfg.Width).String())
}
