// Package fuzzy scores free text against known license bodies using
// Dice-Sørensen n-gram set similarity, with a token-sequence ratio as a
// slower, more precise corroboration method.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/licet/licet/internal/corpus"
)

// minMatchChars is the shortest normalized input that can produce a match.
// Tiny inputs yield degenerate n-gram sets and spuriously high scores.
const minMatchChars = 20

// snippetHead and sectionWindow control how reference texts are cut into
// comparison snippets. Long license bodies are matched by their head and by
// windows around distinctive section keywords, so a quoted paragraph can
// still score well against a multi-page license.
const (
	snippetWhole  = 1500
	snippetHead   = 500
	sectionBefore = 50
	sectionAfter  = 200
)

var sectionKeywords = []string{"permission", "condition", "limitation", "warranty", "liability"}

type ngramSet map[string]struct{}

// Match is one scored candidate.
type Match struct {
	ID    string
	Score float64
}

// Matcher computes Dice-Sørensen similarity between an input and a set of
// registered reference snippets, using n-grams of a fixed size. Register
// all references before matching; the snippet table is read-only during
// matching so concurrent matches are safe.
type Matcher struct {
	n        int
	snippets map[string][]ngramSet
	order    []string
}

// NewMatcher creates a matcher over n-grams of the given size.
func NewMatcher(n int) *Matcher {
	if n < 1 {
		n = 1
	}
	return &Matcher{n: n, snippets: make(map[string][]ngramSet)}
}

// Seed registers comparison snippets for every corpus entry: the whole
// normalized text (capped), its head, and windows around section keywords.
func (m *Matcher) Seed(c *corpus.Corpus) {
	if c == nil {
		return
	}
	c.Each(func(e corpus.Entry) {
		norm := e.Normalized
		if len(norm) > snippetWhole {
			m.addNormalized(e.ID, norm[:snippetWhole])
		} else {
			m.addNormalized(e.ID, norm)
		}
		if len(norm) > snippetHead {
			m.addNormalized(e.ID, norm[:snippetHead])
			for _, kw := range sectionKeywords {
				idx := strings.Index(norm, kw)
				if idx <= 0 {
					continue
				}
				lo := idx - sectionBefore
				if lo < 0 {
					lo = 0
				}
				hi := idx + sectionAfter
				if hi > len(norm) {
					hi = len(norm)
				}
				m.addNormalized(e.ID, norm[lo:hi])
			}
		}
	})
}

// AddSnippet registers an extra comparison target, e.g. an organization's
// custom license. Call during setup, before matching begins.
func (m *Matcher) AddSnippet(id, text string) {
	m.addNormalized(id, corpus.Normalize(text))
}

func (m *Matcher) addNormalized(id, norm string) {
	set := ngrams(norm, m.n)
	if len(set) == 0 {
		return
	}
	if _, seen := m.snippets[id]; !seen {
		m.order = append(m.order, id)
	}
	m.snippets[id] = append(m.snippets[id], set)
}

// MatchOne returns the best-scoring reference at or above threshold.
func (m *Matcher) MatchOne(text string, threshold float64) (Match, bool) {
	all := m.MatchAll(text)
	if len(all) == 0 || all[0].Score < threshold {
		return Match{}, false
	}
	return all[0], true
}

// MatchAll scores the input against every reference and returns the full
// list, sorted by score descending. Inputs below the minimum normalized
// length return nil.
func (m *Matcher) MatchAll(text string) []Match {
	norm := corpus.Normalize(text)
	if len(norm) < minMatchChars {
		return nil
	}
	input := ngrams(norm, m.n)
	if len(input) == 0 {
		return nil
	}
	out := make([]Match, 0, len(m.order))
	for _, id := range m.order {
		best := 0.0
		for _, ref := range m.snippets[id] {
			if s := dice(input, ref); s > best {
				best = s
			}
		}
		out = append(out, Match{ID: id, Score: best})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Compare returns the Dice similarity of two arbitrary texts. Identical
// texts yield exactly 1.0 and texts with no shared n-grams yield 0.0.
func (m *Matcher) Compare(a, b string) float64 {
	return dice(ngrams(corpus.Normalize(a), m.n), ngrams(corpus.Normalize(b), m.n))
}

// ngrams slides a window of n tokens over the normalized text.
func ngrams(normalized string, n int) ngramSet {
	tokens := strings.Fields(normalized)
	if len(tokens) < n {
		return nil
	}
	set := make(ngramSet, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		set[strings.Join(tokens[i:i+n], " ")] = struct{}{}
	}
	return set
}

// dice computes 2·|A∩B| / (|A|+|B|), defined as 0.0 when either set is
// empty.
func dice(a, b ngramSet) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	common := 0
	for g := range small {
		if _, ok := large[g]; ok {
			common++
		}
	}
	return 2.0 * float64(common) / float64(len(a)+len(b))
}
