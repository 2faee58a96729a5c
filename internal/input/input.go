// Package input contains the line readers used to get lox source input from
// the CLI or other sources of input.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader reads one line of source input at a time. All Readers must have
// Close called on them before disposal to properly tear down any resources
// they hold.
type Reader interface {
	// ReadLine blocks until a line of input is available and returns it
	// without its trailing newline. At end of input it returns io.EOF.
	ReadLine() (string, error)

	// Close releases any resources held by the reader.
	Close() error
}

// DirectSourceReader is a Reader that reads lines from any generic input
// stream directly. It can be used with any io.Reader but does not sanitize
// the input of control and escape sequences.
//
// DirectSourceReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectSourceReader struct {
	r *bufio.Reader
}

// InteractiveSourceReader is a Reader that reads lines from stdin using a go
// implementation of the GNU Readline library. This keeps input clear of all
// typing and editing escape sequences and enables the use of line history.
// This should in general only be used when directly connected to a TTY.
//
// InteractiveSourceReader should not be used directly; instead, create one
// with [NewInteractiveReader].
type InteractiveSourceReader struct {
	rl     *readline.Instance
	prompt string
}

// NewDirectReader creates a new DirectSourceReader and initializes a
// buffered reader on the provided stream.
func NewDirectReader(r io.Reader) *DirectSourceReader {
	return &DirectSourceReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates a new InteractiveSourceReader and initializes
// readline with the given prompt. If historyFile is non-empty, line history
// is persisted to it across sessions.
func NewInteractiveReader(prompt string, historyFile string) (*InteractiveSourceReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveSourceReader{
		rl:     rl,
		prompt: prompt,
	}, nil
}

// Close cleans up resources associated with the DirectSourceReader.
func (dsr *DirectSourceReader) Close() error {
	// this function is here so DirectSourceReader implements Reader. For now
	// it doesn't do anything as the DirectSourceReader does not create
	// resources, but it may in the future and callers should treat it as
	// though it must have Close called on it.

	return nil
}

// Close cleans up readline resources and other resources associated with the
// InteractiveSourceReader.
func (isr *InteractiveSourceReader) Close() error {
	return isr.rl.Close()
}

// ReadLine reads the next line from the stream. The trailing line separator
// is trimmed along with any other surrounding whitespace.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (dsr *DirectSourceReader) ReadLine() (string, error) {
	line, err := dsr.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// ReadLine reads the next line from stdin. The trailing line separator is
// trimmed along with any other surrounding whitespace.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (isr *InteractiveSourceReader) ReadLine() (string, error) {
	line, err := isr.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			// treat an interrupted line as a blank line
			return "", nil
		}
		if err != io.EOF || line == "" {
			return "", err
		}
	}

	return strings.TrimSpace(line), nil
}

// SetPrompt updates the prompt to the given text.
func (isr *InteractiveSourceReader) SetPrompt(p string) {
	isr.prompt = p
	isr.rl.SetPrompt(p)
}

// GetPrompt gets the current prompt.
func (isr *InteractiveSourceReader) GetPrompt() string {
	return isr.prompt
}
