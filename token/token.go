// Package token splits a LAS byte stream into a lazy sequence of classified
// line tokens.
package token

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Kind classifies a physical input line.
type Kind int

const (
	// Blank is an empty or whitespace-only line.
	Blank Kind = iota
	// Comment is a line whose first non-blank character is '#'.
	Comment
	// SectionHeader is a line whose first non-blank character is '~'.
	SectionHeader
	// DataLine is any other non-blank line.
	DataLine
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "Blank"
	case Comment:
		return "Comment"
	case SectionHeader:
		return "SectionHeader"
	case DataLine:
		return "DataLine"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// LineToken is one classified physical input line.
//
// Text holds the payload appropriate to Kind:
//   - Comment: the text after '#', trimmed.
//   - SectionHeader: the text after '~', trimmed.
//   - DataLine: the original line with its line terminator stripped but
//     interior whitespace preserved.
//   - Blank: always empty.
//
// Line is the 1-based physical line number of the input.
type LineToken struct {
	Text string
	Kind Kind
	Line int
}

// Tokenizer reads lines from an [io.Reader] and classifies them.
type Tokenizer struct {
	r   io.Reader
	err error
}

// New returns a [*Tokenizer] reading from r.
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{r: r}
}

// Tokens returns a lazy, finite sequence of [LineToken]s in input order.
//
// If the underlying reader fails, the sequence ends early without yielding
// an error token; the failure is reported by [Tokenizer.Err], which callers
// should check after consuming the sequence to completion.
func (t *Tokenizer) Tokens() iter.Seq[LineToken] {
	return func(yield func(LineToken) bool) {
		scanner := bufio.NewScanner(t.r)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

		lineNo := 0
		for scanner.Scan() {
			lineNo++
			if !yield(classify(scanner.Text(), lineNo)) {
				return
			}
		}

		t.err = scanner.Err()
	}
}

// Err returns the error, if any, that terminated the most recent call to
// [Tokenizer.Tokens]. It must be checked after the sequence is fully drained.
func (t *Tokenizer) Err() error {
	return t.err
}

func classify(raw string, lineNo int) LineToken {
	trimmed := strings.TrimLeft(raw, " \t")

	switch {
	case trimmed == "":
		return LineToken{Kind: Blank, Line: lineNo}
	case trimmed[0] == '#':
		return LineToken{Kind: Comment, Text: strings.TrimSpace(trimmed[1:]), Line: lineNo}
	case trimmed[0] == '~':
		return LineToken{Kind: SectionHeader, Text: strings.TrimSpace(trimmed[1:]), Line: lineNo}
	default:
		return LineToken{Kind: DataLine, Text: strings.TrimRight(raw, "\r"), Line: lineNo}
	}
}
