package ternary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiterals(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1, "+"},
		{-1, "-"},
		{2, "+-"},
		{-2, "-+"},
		{3, "+0"},
		{4, "++"},
		{5, "+--"},
		{9, "+00"},
		{-9, "-00"},
		{13, "+++"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			got := From(tc.in)
			assert.Equal(t, tc.want, got.String())
			assert.Equal(t, tc.in, got.Int())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for n := int64(-10000); n <= 10000; n++ {
		require.Equal(t, n, From(n).Int(), "n=%d", n)
	}

	for _, n := range []int64{math.MaxInt64, math.MaxInt64 - 1, math.MinInt64 + 1} {
		require.Equal(t, n, From(n).Int(), "n=%d", n)
	}
}

func TestParseStringIdentity(t *testing.T) {
	for n := int64(-1000); n <= 1000; n++ {
		s := From(n).String()
		parsed, err := Parse(s)
		require.NoError(t, err, "s=%q", s)
		require.Equal(t, n, parsed.Int(), "s=%q", s)
		require.Equal(t, s, parsed.String())
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "12", "+-x", "+ -", "±"} {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParseAcceptsNonCanonicalForms(t *testing.T) {
	// Leading zeros denote the same value.
	v, err := Parse("00+-")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int())
}
