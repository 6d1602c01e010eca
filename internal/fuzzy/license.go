package fuzzy

import (
	"github.com/licet/licet/internal/corpus"
	"github.com/licet/licet/internal/types"
)

// LicenseMatcher layers tier selection over two Dice matchers: bigrams are
// tried first and unigrams only when the best bigram score falls below the
// threshold. The unigram tier is a fallback, not a simultaneous vote.
type LicenseMatcher struct {
	bigram  *Matcher
	unigram *Matcher
}

// NewLicenseMatcher builds an unseeded tiered matcher.
func NewLicenseMatcher() *LicenseMatcher {
	return &LicenseMatcher{
		bigram:  NewMatcher(2),
		unigram: NewMatcher(1),
	}
}

// Seed registers comparison snippets for every corpus entry in both tiers.
func (lm *LicenseMatcher) Seed(c *corpus.Corpus) {
	lm.bigram.Seed(c)
	lm.unigram.Seed(c)
}

// AddSnippet registers an extra reference text in both tiers.
func (lm *LicenseMatcher) AddSnippet(id, text string) {
	lm.bigram.AddSnippet(id, text)
	lm.unigram.AddSnippet(id, text)
}

// Match returns the best candidate at or above threshold, tagged with the
// tier that produced it.
func (lm *LicenseMatcher) Match(text string, threshold float64) (Match, types.Method, bool) {
	if m, ok := lm.bigram.MatchOne(text, threshold); ok {
		return m, types.MethodDiceBigram, true
	}
	if m, ok := lm.unigram.MatchOne(text, threshold); ok {
		return m, types.MethodDiceUnigram, true
	}
	return Match{}, "", false
}

// MatchTop returns up to max candidates at or above threshold from the
// first tier that yields any, best first.
func (lm *LicenseMatcher) MatchTop(text string, threshold float64, max int) ([]Match, types.Method) {
	if out := top(lm.bigram.MatchAll(text), threshold, max); len(out) > 0 {
		return out, types.MethodDiceBigram
	}
	if out := top(lm.unigram.MatchAll(text), threshold, max); len(out) > 0 {
		return out, types.MethodDiceUnigram
	}
	return nil, ""
}

func top(all []Match, threshold float64, max int) []Match {
	var out []Match
	for _, m := range all {
		if m.Score < threshold {
			break
		}
		out = append(out, m)
		if len(out) == max {
			break
		}
	}
	return out
}
