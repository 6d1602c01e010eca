// Package detect is the single entry point for license detection. It runs
// the cheap pattern strategies first, falls back to Dice-Sørensen and
// sequence similarity against the SPDX corpus, then merges, deduplicates,
// and ranks the candidates. Detection never returns an error; the worst
// case is an empty result.
package detect

import (
	"sort"
	"strings"

	"github.com/licet/licet/internal/corpus"
	"github.com/licet/licet/internal/fuzzy"
	"github.com/licet/licet/internal/patterns"
	"github.com/licet/licet/internal/types"
)

// shortCircuit is the pattern confidence above which fuzzy matching is
// skipped entirely.
const shortCircuit = 0.9

// Options tunes the detector. Zero values take the defaults below.
type Options struct {
	// FuzzyThreshold is the minimum Dice score reported (default 0.6).
	FuzzyThreshold float64
	// SequenceThreshold is the minimum sequence ratio reported (default 0.7).
	SequenceThreshold float64
	// MaxFuzzy caps Dice candidates merged per call (default 3).
	MaxFuzzy int
	// MaxSequence caps sequence-similarity candidates per call (default 2).
	MaxSequence int
	// MinConfidence drops findings below this value from the final list.
	MinConfidence float64
	// DisablePatterns skips the pattern strategies (similarity only).
	DisablePatterns bool
	// DisableFuzzy skips similarity scoring (patterns only).
	DisableFuzzy bool
}

func (o Options) withDefaults() Options {
	if o.FuzzyThreshold <= 0 {
		o.FuzzyThreshold = 0.6
	}
	if o.SequenceThreshold <= 0 {
		o.SequenceThreshold = 0.7
	}
	if o.MaxFuzzy <= 0 {
		o.MaxFuzzy = 3
	}
	if o.MaxSequence <= 0 {
		o.MaxSequence = 2
	}
	return o
}

// File is a named blob handed over by an archive extractor.
type File struct {
	Name    string
	Content []byte
}

// Detector combines the pattern and fuzzy strategies over one corpus. The
// corpus may be nil or empty, in which case detection degrades to the
// pattern strategies alone. A Detector is safe for concurrent use once
// constructed; AddReferenceSnippet must happen before matching begins.
type Detector struct {
	corpus   *corpus.Corpus
	patterns *patterns.Detector
	fuzzy    *fuzzy.LicenseMatcher
	opts     Options
}

// New builds a detector over the given corpus.
func New(c *corpus.Corpus, opts Options) *Detector {
	d := &Detector{
		corpus:   c,
		patterns: patterns.New(c),
		fuzzy:    fuzzy.NewLicenseMatcher(),
		opts:     opts.withDefaults(),
	}
	if c != nil {
		d.fuzzy.Seed(c)
	}
	return d
}

// AddReferenceSnippet registers an extra fuzzy comparison target, e.g. an
// organization-specific license. Call during setup.
func (d *Detector) AddReferenceSnippet(id, text string) {
	d.fuzzy.AddSnippet(id, text)
}

// Detect runs all enabled strategies over a text blob and returns the
// merged, deduplicated findings sorted by confidence descending. source
// names the originating file or field for provenance; license-named
// sources boost pattern confidence.
func (d *Detector) Detect(source, text string) []types.Finding {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var cands []types.Finding

	if !d.opts.DisablePatterns {
		if f := d.patterns.DetectText(text, source); f != nil {
			// Dual-license statements surface through DetectMultiple on
			// both branches; dedupe keeps the boosted single finding when
			// both name the same license.
			multi := append(d.patterns.DetectMultiple(text), *f)
			if f.Confidence >= shortCircuit {
				// Certain enough that fuzzy work would be wasted.
				return d.finish(source, multi)
			}
			cands = append(cands, multi...)
		}
	}

	if !d.opts.DisableFuzzy && d.corpus != nil && d.corpus.Len() > 0 {
		cands = append(cands, d.fuzzyCandidates(text)...)
		cands = append(cands, d.sequenceCandidates(text)...)
	}

	return d.finish(source, cands)
}

// DetectMetadata resolves a structured license field from already-parsed
// package metadata. Returns nil when nothing matches.
func (d *Detector) DetectMetadata(fields map[string]any) *types.Finding {
	if len(fields) == 0 {
		return nil
	}
	return d.patterns.DetectMetadata(fields)
}

// DetectFromFiles runs detection over candidate license files extracted
// from an archive, aggregating and deduplicating across files. Files whose
// names do not look license-bearing are ignored; unreadable content is
// skipped per file.
func (d *Detector) DetectFromFiles(files []File) []types.Finding {
	var all []types.Finding
	for _, f := range files {
		if !patterns.IsLicenseFilename(f.Name) {
			continue
		}
		text := strings.ToValidUTF8(string(f.Content), " ")
		if strings.TrimSpace(text) == "" {
			continue
		}
		all = append(all, d.Detect(f.Name, text)...)
	}
	return types.Dedupe(all)
}

// fuzzyCandidates returns Dice-Sørensen matches, bigram tier first with
// unigram fallback, capped at MaxFuzzy.
func (d *Detector) fuzzyCandidates(text string) []types.Finding {
	// Exact normalized-text hit beats any similarity score.
	norm := corpus.Normalize(text)
	if e, ok := d.corpus.ByFingerprint(norm); ok {
		return []types.Finding{types.NewFinding(e.ID, e.Name, 1.0, types.MethodFullText)}
	}
	matches, method := d.fuzzy.MatchTop(text, d.opts.FuzzyThreshold, d.opts.MaxFuzzy)
	out := make([]types.Finding, 0, len(matches))
	for _, m := range matches {
		out = append(out, types.NewFinding(m.ID, d.displayName(m.ID), m.Score, method))
	}
	return out
}

// sequenceCandidates corroborates near-verbatim license bodies with the
// slower token-sequence ratio.
func (d *Detector) sequenceCandidates(text string) []types.Finding {
	norm := corpus.Normalize(text)
	if len(norm) < 20 {
		return nil
	}
	inTokens := len(strings.Fields(norm))
	var out []types.Finding
	d.corpus.Each(func(e corpus.Entry) {
		// Length-ratio upper bound: wildly different sizes cannot clear
		// the threshold, so skip the quadratic comparison.
		refTokens := len(strings.Fields(e.Normalized))
		lo, hi := inTokens, refTokens
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi == 0 || 2.0*float64(lo)/float64(lo+hi) < d.opts.SequenceThreshold {
			return
		}
		if r := fuzzy.SequenceRatio(text, e.Text); r >= d.opts.SequenceThreshold {
			out = append(out, types.NewFinding(e.ID, e.Name, r, types.MethodFullText))
		}
	})
	// Best ratios win the cap, not corpus load order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].SPDXID < out[j].SPDXID
	})
	if len(out) > d.opts.MaxSequence {
		out = out[:d.opts.MaxSequence]
	}
	return out
}

// finish applies suppression and confidence filtering, deduplicates, and
// stamps provenance.
func (d *Detector) finish(source string, cands []types.Finding) []types.Finding {
	var kept []types.Finding
	for _, f := range cands {
		if suppressed(f) {
			continue
		}
		if f.Confidence < d.opts.MinConfidence {
			continue
		}
		f.SourcePath = source
		kept = append(kept, f)
	}
	return types.Dedupe(kept)
}

func (d *Detector) displayName(id string) string {
	if d.corpus != nil {
		if e, ok := d.corpus.Get(id); ok {
			return e.Name
		}
	}
	return id
}
