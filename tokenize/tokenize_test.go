// SPDX-License-Identifier: MIT
package tokenize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/tokenize"
)

func TestCountTokens(t *testing.T) {
	cases := map[string]struct {
		in   string
		want int
	}{
		"empty":          {"", 0},
		"words":          {"this is a test", 4},
		"leading space":  {"  4 0 1", 3},
		"newlines":       {"4\n0 1\n2 3\n", 5},
		"only spaces":    {" \n \n", 0},
		"tabs are token": {"1\t2 3", 2},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tokenize.CountTokens(tc.in))
		})
	}
}

func TestCountTokens_DoesNotConsume(t *testing.T) {
	text := "4 0 1 2 3"
	assert.Equal(t, 5, tokenize.CountTokens(text))
	assert.Equal(t, "4 0 1 2 3", text)
}

func TestReadNonWhitespace(t *testing.T) {
	in := "this is a test"
	assert.Equal(t, "this", tokenize.ReadNonWhitespace(&in))
	assert.Equal(t, " is a test", in)

	in = " this"
	assert.Equal(t, "", tokenize.ReadNonWhitespace(&in))
	assert.Equal(t, " this", in)

	in = ""
	assert.Equal(t, "", tokenize.ReadNonWhitespace(&in))
	assert.Equal(t, "", in)
}

func TestReadWhitespace(t *testing.T) {
	in := "  is a test"
	assert.Equal(t, "  ", tokenize.ReadWhitespace(&in))
	assert.Equal(t, "is a test", in)

	in = "is"
	assert.Equal(t, "", tokenize.ReadWhitespace(&in))
	assert.Equal(t, "is", in)
}

func TestParseUint(t *testing.T) {
	v, err := tokenize.ParseUint("1234")
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), v)

	v, err = tokenize.ParseUint("")
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = tokenize.ParseUint("12a4")
	assert.ErrorIs(t, err, tokenize.ErrMalformedToken)
	assert.Contains(t, err.Error(), "at 2")

	_, err = tokenize.ParseUint("-1")
	assert.ErrorIs(t, err, tokenize.ErrMalformedToken)

	_, err = tokenize.ParseUint("99999999999999999999999")
	assert.ErrorIs(t, err, tokenize.ErrOverflow)
}

func TestPeekUint(t *testing.T) {
	text := "42 43 44"
	v, err := tokenize.PeekUint(text)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)
	assert.Equal(t, "42 43 44", text)
}

func TestScanner_Next(t *testing.T) {
	s := tokenize.NewScanner("42 43\n44")

	v, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)
	assert.Equal(t, "43\n44", s.Rest())
	assert.Equal(t, 3, s.Offset())

	v, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(43), v)

	v, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(44), v)
	assert.True(t, s.Done())

	v, err = s.Next()
	require.NoError(t, err)
	assert.Zero(t, v, "exhausted input yields the empty token")
}

func TestScanner_MalformedAdvances(t *testing.T) {
	s := tokenize.NewScanner("1 x2 3")
	_, err := s.Next()
	require.NoError(t, err)

	_, err = s.Next()
	require.ErrorIs(t, err, tokenize.ErrMalformedToken)
	assert.Contains(t, err.Error(), "offset 2")

	v, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), v)
}

func TestScanner_SkipSpace(t *testing.T) {
	s := tokenize.NewScanner("\n 7")
	s.SkipSpace()
	assert.Equal(t, 2, s.Offset())

	v, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v)
}
