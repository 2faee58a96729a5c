/*
Loxi runs the lox interpreter.

With no arguments it starts an interactive session, reading one line of
input at a time, evaluating it, and printing the result, until end of input
or the literal line "exit". With one argument it treats the argument as the
path of a source file, evaluates the whole file as a single unit, and exits.

Usage:

	loxi [flags] [FILE]

The flags are:

	-v, --version
		Give the current version of the lox interpreter and then exit.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading input even if launched in a tty
		with stdin and stdout.

	-a, --ast
		Print the parsed expression tree of each input instead of
		evaluating it.

	-c, --config FILE
		Load shell settings (prompt, history file, output width) from the
		given TOML file. A missing file is silently ignored.

Diagnostics are printed to stderr in the form "[line N] Error <loc>: <msg>";
evaluation results are printed to stdout.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/lox"
	"github.com/dekarrin/lox/internal/version"
	"github.com/spf13/pflag"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitRunError indicates an unsuccessful program execution due to a
	// problem while running the interpreter.
	ExitRunError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine.
	ExitInitError
)

// ExitUsage is the conventional exit status for command line usage errors.
const ExitUsage = 64

var (
	returnCode = ExitSuccess

	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of the lox interpreter and then exit.")
	flagDirect  = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible.")
	flagAST     = pflag.BoolP("ast", "a", false, "Print the parsed expression tree instead of evaluating.")
	flagConfig  = pflag.StringP("config", "c", "", "Load shell settings from the given TOML file.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just
			// because we checked
			panic("unrecoverable panic occured")
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	args := pflag.Args()
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Usage: loxi [flags] [FILE]\n")
		returnCode = ExitUsage
		return
	}

	cfg, err := lox.LoadConfig(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	interactive := len(args) == 0

	engOpts := lox.Options{
		Config:      cfg,
		ForceDirect: *flagDirect || !interactive,
		PrintTree:   *flagAST,
	}

	eng, initErr := lox.New(os.Stdin, os.Stdout, os.Stderr, engOpts)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer eng.Close()

	if interactive {
		if err := eng.RunPrompt(); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitRunError
		}
		return
	}

	if err := eng.RunFile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRunError
		return
	}
	if eng.HadError() {
		returnCode = ExitRunError
	}
}
