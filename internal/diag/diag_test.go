package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Entry_String(t *testing.T) {
	testCases := []struct {
		name   string
		input  Entry
		expect string
	}{
		{
			name:   "empty location",
			input:  Entry{Line: 1, Message: "Unexpected character."},
			expect: "[line 1] Error : Unexpected character.",
		},
		{
			name:   "with location",
			input:  Entry{Line: 3, Location: " at ')'", Message: "Expect expression."},
			expect: "[line 3] Error  at ')': Expect expression.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, tc.input.String())
		})
	}
}

func Test_Console(t *testing.T) {
	assert := assert.New(t)

	sb := &strings.Builder{}
	c := NewConsole(sb)

	assert.False(c.HadError())

	c.Report(1, "", "Unexpected character.")
	c.Report(2, " at end", "Expect expression.")

	assert.True(c.HadError())
	assert.Equal(2, c.ErrorCount())
	assert.Equal("[line 1] Error : Unexpected character.\n[line 2] Error  at end: Expect expression.\n", sb.String())

	c.Reset()
	assert.False(c.HadError())
	assert.Equal(0, c.ErrorCount())
}

func Test_Collector(t *testing.T) {
	assert := assert.New(t)

	c := &Collector{}
	assert.False(c.HadError())

	c.Report(4, "", "Unterminated string.")

	assert.True(c.HadError())
	if !assert.Len(c.Entries, 1) {
		return
	}
	assert.Equal(4, c.Entries[0].Line)
	assert.Equal("Unterminated string.", c.Entries[0].Message)

	c.Reset()
	assert.False(c.HadError())
	assert.Empty(c.Entries)
}
