package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput(t *testing.T) {
	testCases := []struct {
		input  string
		output string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a\nb\tc", "a\nb\tc"},
		{"line\r", "line"},
		{"\x1b[31mred\x1b[0m", "[31mred[0m"},
		{"bell\x07", "bell"},
		{"nul\x00byte", "nulbyte"},
		{"你好", "你好"},
	}
	for _, tc := range testCases {
		clean, err := SanitizeInput(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.output, clean, "input %#v", tc.input)
	}
}

func TestSanitizeInputRejects(t *testing.T) {
	_, err := SanitizeInput(strings.Repeat("A", MaxInputSize+1))
	assert.ErrorIs(t, err, ErrInputTooLarge)

	_, err = SanitizeInput("bad \xff utf8")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
