// SPDX-License-Identifier: MIT
// Package tokenize splits a whitespace-delimited stream of non-negative
// integers. Whitespace is exactly ' ' and '\n'.
//
// Two families of operations are provided:
//
//   - Non-consuming scans (CountTokens, PeekUint) used to size storage before
//     any node or edge exists.
//   - A consuming Scanner that strips one token and the whitespace run after
//     it on every Next call.
//
// Tokens must consist of ASCII digits only. Anything else is reported as
// ErrMalformedToken; values beyond uint64 are reported as ErrOverflow.
// An empty token parses to zero.
package tokenize

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMalformedToken indicates a non-digit byte inside a numeric token.
	ErrMalformedToken = errors.New("tokenize: malformed numeric token")

	// ErrOverflow indicates a token whose value does not fit into uint64.
	ErrOverflow = errors.New("tokenize: numeric token overflows uint64")
)

// IsSpace reports whether c separates tokens.
func IsSpace(c byte) bool { return c == ' ' || c == '\n' }

// CountTokens returns the number of maximal non-whitespace runs in text.
// Complexity: O(len(text)), no allocations.
func CountTokens(text string) int {
	count := 0
	inToken := false
	for i := 0; i < len(text); i++ {
		space := IsSpace(text[i])
		if !space && !inToken {
			count++
		}
		inToken = !space
	}

	return count
}

// ReadNonWhitespace removes the leading non-whitespace run from *text and returns it.
func ReadNonWhitespace(text *string) string {
	return readWhile(text, func(c byte) bool { return !IsSpace(c) })
}

// ReadWhitespace removes the leading whitespace run from *text and returns it.
func ReadWhitespace(text *string) string {
	return readWhile(text, IsSpace)
}

func readWhile(text *string, keep func(byte) bool) string {
	s := *text
	i := 0
	for i < len(s) && keep(s[i]) {
		i++
	}
	*text = s[i:]

	return s[:i]
}

// ParseUint converts a token of ASCII digits into its value.
// The empty token is zero.
func ParseUint(token string) (uint64, error) {
	if token == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(token, 10, 64)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, token)
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, fmt.Errorf("%w: %q has %q at %d", ErrMalformedToken, token, token[i], i)
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrMalformedToken, token)
}

// PeekUint returns the value of the first token of text without consuming it.
func PeekUint(text string) (uint64, error) {
	return ParseUint(ReadNonWhitespace(&text))
}
