// Copyright (c) 2023 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package lib

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// scriptReader returns a LineReader that yields lines in order and then
// io.EOF, recording the prompts it was shown.
func scriptReader(prompts *[]string, lines ...string) LineReader {
	return func(prompt string) (string, error) {
		*prompts = append(*prompts, prompt)
		if len(lines) == 0 {
			return "", io.EOF
		}
		line := lines[0]
		lines = lines[1:]
		return line, nil
	}
}

type blockTestCase struct {
	lines     []string
	text      string
	multiline bool
	reads     int
}

var blockTestCases = []blockTestCase{
	{[]string{"hello"}, "hello", false, 1},
	{[]string{"  spaced  "}, "  spaced  ", false, 1},
	{[]string{"```x"}, "```x", false, 1},
	{[]string{"<<< x"}, "<<< x", false, 1},
	{[]string{"```", "a", "b", "```"}, "a\nb", true, 4},
	{[]string{"<<<", "a", "b", "<<<"}, "a\nb", true, 4},
	{[]string{"```", "a", "<<<", "ignored"}, "a", true, 3},
	{[]string{" <<< ", " a ", "```"}, " a ", true, 3},
	{[]string{"```", "```"}, "", true, 2},
	{[]string{"```"}, "", true, 2},
	{[]string{"```", "a", ""}, "a\n", true, 4},
}

func TestReadInput(t *testing.T) {
	prompts := NewPrompts(true)
	for i, testCase := range blockTestCases {
		var seen []string
		var out bytes.Buffer
		text, multiline, err := ReadInput(scriptReader(&seen, testCase.lines...), &out, prompts, "HINT")
		if err != nil {
			t.Errorf("test case %d failed: unexpected error %v", i, err)
			continue
		}
		if text != testCase.text || multiline != testCase.multiline {
			t.Errorf("test case %d failed: input %#v\nwant %#v (multiline=%t)\ngot  %#v (multiline=%t)",
				i, testCase.lines, testCase.text, testCase.multiline, text, multiline)
		}
		if len(seen) != testCase.reads {
			t.Errorf("test case %d failed: want %d reads, got %d", i, testCase.reads, len(seen))
		}
		if (out.String() == "HINT\n") != testCase.multiline {
			t.Errorf("test case %d failed: unexpected output %#v", i, out.String())
		}
	}
}

func TestReadInputPrompts(t *testing.T) {
	var seen []string
	prompts := NewPrompts(true)
	_, _, err := ReadInput(scriptReader(&seen, "```", "a", "```"), io.Discard, prompts, "")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"> ", "... ", "... "}
	if len(seen) != len(want) {
		t.Fatalf("want prompts %#v, got %#v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("prompt %d: want %#v, got %#v", i, want[i], seen[i])
		}
	}
}

func TestReadInputErrors(t *testing.T) {
	failing := func(failAt int, failure error) LineReader {
		lines := []string{"```", "a", "b"}
		count := 0
		return func(prompt string) (string, error) {
			if count == failAt {
				return "", failure
			}
			line := lines[count]
			count++
			return line, nil
		}
	}

	// any failure on the first line is returned as is
	for _, failure := range []error{io.EOF, ErrInterrupt, errors.New("broken pipe")} {
		_, _, err := ReadInput(failing(0, failure), io.Discard, NewPrompts(true), "")
		if !errors.Is(err, failure) {
			t.Errorf("first line: want %v, got %v", failure, err)
		}
	}

	// inside a block only EOF is absorbed
	text, multiline, err := ReadInput(failing(2, io.EOF), io.Discard, NewPrompts(true), "")
	if err != nil || text != "a" || !multiline {
		t.Errorf("eof in block: got %#v, %t, %v", text, multiline, err)
	}
	_, _, err = ReadInput(failing(2, ErrInterrupt), io.Discard, NewPrompts(true), "")
	if !errors.Is(err, ErrInterrupt) {
		t.Errorf("interrupt in block: want ErrInterrupt, got %v", err)
	}
}
