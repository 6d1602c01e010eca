package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licet/licet/internal/corpus"
	"github.com/licet/licet/internal/types"
)

func seeded(t *testing.T, n int) *Matcher {
	t.Helper()
	m := NewMatcher(n)
	m.Seed(corpus.NewBuiltin())
	return m
}

func TestCompare(t *testing.T) {
	m := NewMatcher(2)

	assert.Equal(t, 1.0, m.Compare("the quick brown fox", "the quick brown fox"))
	assert.Equal(t, 0.0, m.Compare("alpha beta gamma", "one two three"))
	assert.Equal(t, 0.0, m.Compare("", "anything at all here"))

	// Four bigrams a side, two shared: 2*2/(4+4).
	got := m.Compare("the quick brown fox jumps", "the quick brown dog jumps")
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestCompareUnigram(t *testing.T) {
	m := NewMatcher(1)
	// Word order must not matter for unigram sets.
	assert.Equal(t, 1.0, m.Compare("alpha beta gamma delta", "delta gamma beta alpha"))
}

func TestMatchAllRejectsShortInput(t *testing.T) {
	m := seeded(t, 2)
	assert.Nil(t, m.MatchAll("MIT"))
	assert.Nil(t, m.MatchAll(""))
	_, ok := m.MatchOne("GPL", 0.1)
	assert.False(t, ok)
}

func TestMatchOneFullLicenseText(t *testing.T) {
	c := corpus.NewBuiltin()
	e, ok := c.Get("MIT")
	require.True(t, ok)

	m := NewMatcher(2)
	m.Seed(c)

	// A real-world copy differs from the canonical text by its copyright
	// line; the score should stay well above the similarity threshold.
	text := "Copyright (c) 2024 Example Corp\n\n" + e.Text
	best, ok := m.MatchOne(text, 0.8)
	require.True(t, ok)
	assert.Equal(t, "MIT", best.ID)
	assert.Greater(t, best.Score, 0.8)
}

func TestMatchAllSortedByScore(t *testing.T) {
	c := corpus.NewBuiltin()
	e, _ := c.Get("Apache-2.0")

	m := NewMatcher(2)
	m.Seed(c)

	all := m.MatchAll(e.Text)
	require.NotEmpty(t, all)
	assert.Equal(t, "Apache-2.0", all[0].ID)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Score, all[i].Score)
	}
}

func TestNoMatchForUnrelatedProse(t *testing.T) {
	m := seeded(t, 2)
	_, ok := m.MatchOne("This is just some random text that has nothing to do with any license.", 0.6)
	assert.False(t, ok)
}

func TestAddSnippetCustomLicense(t *testing.T) {
	m := NewMatcher(2)
	m.AddSnippet("Custom-1.0", "Permission to use this internal tool is granted to employees only and may be revoked at any time.")

	best, ok := m.MatchOne("permission to use this internal tool is granted to employees only", 0.6)
	require.True(t, ok)
	assert.Equal(t, "Custom-1.0", best.ID)
}

func TestLicenseMatcherUnigramFallback(t *testing.T) {
	lm := NewLicenseMatcher()
	lm.AddSnippet("Scrambled", "epsilon delta gamma beta alpha")

	// Same tokens in reverse: no shared bigrams, identical unigram sets.
	m, method, ok := lm.Match("alpha beta gamma delta epsilon", 0.8)
	require.True(t, ok)
	assert.Equal(t, "Scrambled", m.ID)
	assert.Equal(t, types.MethodDiceUnigram, method)
	assert.Equal(t, 1.0, m.Score)
}

func TestLicenseMatcherPrefersBigrams(t *testing.T) {
	c := corpus.NewBuiltin()
	e, _ := c.Get("MIT")

	lm := NewLicenseMatcher()
	lm.Seed(c)

	_, method, ok := lm.Match(e.Text, 0.6)
	require.True(t, ok)
	assert.Equal(t, types.MethodDiceBigram, method)
}

func TestMatchTopCapsResults(t *testing.T) {
	lm := NewLicenseMatcher()
	lm.Seed(corpus.NewBuiltin())

	c := corpus.NewBuiltin()
	e, _ := c.Get("GPL-3.0")
	out, _ := lm.MatchTop(e.Text, 0.1, 2)
	assert.LessOrEqual(t, len(out), 2)
	require.NotEmpty(t, out)
	assert.Equal(t, "GPL-3.0", out[0].ID)
}

func TestSequenceRatio(t *testing.T) {
	assert.Equal(t, 1.0, SequenceRatio("permission is hereby granted", "Permission is hereby granted."))
	assert.Equal(t, 0.0, SequenceRatio("alpha beta gamma", "one two three"))
	assert.Equal(t, 0.0, SequenceRatio("", "whatever"))

	// LCS "one two four" of length 3 over 4+3 tokens.
	assert.InDelta(t, 6.0/7.0, SequenceRatio("one two three four", "one two four"), 1e-9)
}
