// Package diag contains the diagnostic reporting sink that the scanner,
// parser, and shells hand errors to. Reporting a diagnostic never affects
// control flow in the component that reported it; the sink only records and
// displays.
package diag

import (
	"fmt"
	"io"
)

// Entry is a single reported diagnostic.
type Entry struct {
	// Line is the 1-based source line the diagnostic refers to.
	Line int

	// Location is extra position info such as " at ')'". It is empty for
	// scan and runtime diagnostics.
	Location string

	// Message is the diagnostic text.
	Message string
}

// String returns the entry in the canonical "[line N] Error <location>:
// <message>" form.
func (e Entry) String() string {
	return fmt.Sprintf("[line %d] Error %s: %s", e.Line, e.Location, e.Message)
}

// Reporter receives diagnostics keyed by source line. Implementations must
// not panic or otherwise disturb the caller; a reporter is a sink only.
type Reporter interface {
	// Report records a diagnostic at the given line. Location may be empty.
	Report(line int, location string, message string)
}

// Console is a Reporter that writes each diagnostic to an output stream as
// it arrives and remembers whether any were reported. The zero value is not
// valid; create one with NewConsole.
type Console struct {
	w     io.Writer
	count int
}

// NewConsole creates a Console reporter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Report writes the diagnostic to the console's stream.
func (c *Console) Report(line int, location string, message string) {
	c.count++
	fmt.Fprintf(c.w, "%s\n", Entry{Line: line, Location: location, Message: message})
}

// HadError returns whether any diagnostic has been reported since the last
// Reset.
func (c *Console) HadError() bool {
	return c.count > 0
}

// ErrorCount returns the number of diagnostics reported since the last
// Reset.
func (c *Console) ErrorCount() int {
	return c.count
}

// Reset clears the error state so the console can be reused for the next
// unit of input.
func (c *Console) Reset() {
	c.count = 0
}

// Collector is a Reporter that stores every diagnostic it receives in order.
// It is used where the diagnostics are part of a result rather than console
// output, such as server responses and tests. The zero value is an empty
// collector ready for use.
type Collector struct {
	// Entries holds every reported diagnostic, oldest first.
	Entries []Entry
}

// Report appends the diagnostic to the collector.
func (c *Collector) Report(line int, location string, message string) {
	c.Entries = append(c.Entries, Entry{Line: line, Location: location, Message: message})
}

// HadError returns whether any diagnostic has been collected since the last
// Reset.
func (c *Collector) HadError() bool {
	return len(c.Entries) > 0
}

// Reset discards all collected diagnostics.
func (c *Collector) Reset() {
	c.Entries = nil
}
