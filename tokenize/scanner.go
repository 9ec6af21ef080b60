// SPDX-License-Identifier: MIT
package tokenize

import "fmt"

// Scanner consumes integer tokens from the front of a string.
// The zero value scans an empty input.
type Scanner struct {
	rest   string
	offset int // bytes consumed so far
}

// NewScanner returns a Scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{rest: text}
}

// Next strips the leading token, parses it, then strips the whitespace run
// that follows, advancing past both. An empty token (input that starts with
// whitespace or is exhausted) parses to zero.
//
// On a parse error the cursor still advances past the offending token, and the
// error carries the token's byte offset.
func (s *Scanner) Next() (uint64, error) {
	at := s.offset
	before := len(s.rest)
	tok := ReadNonWhitespace(&s.rest)
	ReadWhitespace(&s.rest)
	s.offset += before - len(s.rest)

	v, err := ParseUint(tok)
	if err != nil {
		return 0, fmt.Errorf("offset %d: %w", at, err)
	}

	return v, nil
}

// SkipSpace discards any whitespace at the cursor.
func (s *Scanner) SkipSpace() {
	s.offset += len(ReadWhitespace(&s.rest))
}

// Done reports whether the input is exhausted.
func (s *Scanner) Done() bool { return len(s.rest) == 0 }

// Rest returns the unconsumed input.
func (s *Scanner) Rest() string { return s.rest }

// Offset returns the number of bytes consumed so far.
func (s *Scanner) Offset() int { return s.offset }
