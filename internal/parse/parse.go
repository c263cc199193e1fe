// Package parse turns puzzle input lines into geom records.
//
// Grammar per record:
//
//	point      "<int>,<int>"
//	point3     "<int>,<int>,<int>"
//	fold       "fold along <x|y>=<int>"
//	segment    "<int>,<int> -> <int>,<int>"   (whitespace ignored)
//	header     "--- scanner <int> ---"
//	target     "target area: x=<int>..<int>, y=<int>..<int>"
//
// Nothing is coerced: a malformed token or wrong field count is a
// *ParseError and the caller is expected to abort.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes a record that does not match its grammar.
type ParseError struct {
	// Line is the 1-based input line, or 0 when parsing a lone string.
	Line   int
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Input != "" {
		fmt.Fprintf(&b, "parse %q: ", e.Input)
	}
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

func errorf(input string, cause error, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...), Err: cause}
}

// atLine stamps a line number onto err if it is a *ParseError without one.
func atLine(err error, line int) error {
	if pe, ok := err.(*ParseError); ok && pe.Line == 0 {
		pe.Line = line
	}
	return err
}

// isBlank reports whether a line separates blocks.
func isBlank(line string) bool { return strings.TrimSpace(line) == "" }

// Block is a run of non-blank lines. Start is the 1-based line number of
// the first entry.
type Block struct {
	Start int
	Lines []string
}

// Blocks partitions lines at every blank line. Runs of blank lines do not
// produce empty blocks, and a final block needs no trailing blank line.
func Blocks(lines []string) []Block {
	var (
		out []Block
		cur *Block
	)
	for i, l := range lines {
		if isBlank(l) {
			cur = nil
			continue
		}
		if cur == nil {
			out = append(out, Block{Start: i + 1})
			cur = &out[len(out)-1]
		}
		cur.Lines = append(cur.Lines, l)
	}
	return out
}

// SplitAtBlank partitions lines at the first blank line. The second half
// may itself contain blank lines; record parsers skip them. A missing
// separator is an error.
func SplitAtBlank(lines []string) (head, tail Block, err error) {
	for i, l := range lines {
		if isBlank(l) {
			return Block{Start: 1, Lines: lines[:i]}, Block{Start: i + 2, Lines: lines[i+1:]}, nil
		}
	}
	return Block{}, Block{}, &ParseError{Reason: "missing blank line between sections"}
}

// integer parses a signed decimal token after trimming surrounding space.
func integer(input, tok string) (int, error) {
	tok = strings.TrimSpace(tok)
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errorf(input, err, "bad integer %q", tok)
	}
	return v, nil
}

// ints splits input on sep and parses exactly n integers.
func ints(input, sep string, n int) ([]int, error) {
	fields := strings.Split(input, sep)
	if len(fields) != n {
		return nil, errorf(input, nil, "want %d fields, got %d", n, len(fields))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := integer(input, f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
