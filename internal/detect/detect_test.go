package detect

import (
	"reflect"
	"testing"

	"github.com/licet/licet/internal/corpus"
	"github.com/licet/licet/internal/types"
)

func newTestDetector(opts Options) *Detector {
	return New(corpus.NewBuiltin(), opts)
}

func mustEntry(t *testing.T, id string) corpus.Entry {
	t.Helper()
	e, ok := corpus.NewBuiltin().Get(id)
	if !ok {
		t.Fatalf("corpus entry %s missing", id)
	}
	return e
}

func TestDetectSPDXTag(t *testing.T) {
	d := newTestDetector(Options{})
	out := d.Detect("main.go", "// SPDX-License-Identifier: Apache-2.0\npackage main\n")
	if len(out) != 1 {
		t.Fatalf("expected 1 finding, got %d: %+v", len(out), out)
	}
	f := out[0]
	if f.SPDXID != "Apache-2.0" || f.Confidence != 1.0 || f.Level != types.LevelExact {
		t.Errorf("unexpected finding %+v", f)
	}
	if f.SourcePath != "main.go" {
		t.Errorf("provenance not stamped, got %q", f.SourcePath)
	}
}

func TestDetectEmptyInput(t *testing.T) {
	d := newTestDetector(Options{})
	if out := d.Detect("LICENSE", "   \n "); out != nil {
		t.Errorf("expected nil, got %+v", out)
	}
}

func TestDetectShortCircuitKeepsBoostedConfidence(t *testing.T) {
	d := newTestDetector(Options{})
	// A bare token in a license-named file is boosted to 0.9; the prose
	// scan finding the same license at 0.6 must not override that.
	out := d.Detect("LICENSE", "MIT")
	if len(out) != 1 {
		t.Fatalf("expected 1 finding, got %d: %+v", len(out), out)
	}
	if out[0].SPDXID != "MIT" || out[0].Confidence != 0.9 {
		t.Errorf("got %+v, want MIT at 0.9", out[0])
	}
}

func TestDetectCanonicalTextIsExact(t *testing.T) {
	d := newTestDetector(Options{})
	e := mustEntry(t, "MIT")
	out := d.Detect("LICENSE", e.Text)
	if len(out) == 0 {
		t.Fatal("expected findings")
	}
	f := out[0]
	if f.SPDXID != "MIT" || f.Confidence != 1.0 || f.Method != types.MethodFullText {
		t.Errorf("canonical text should fingerprint-match, got %+v", f)
	}
}

func TestDetectFuzzyOnly(t *testing.T) {
	d := newTestDetector(Options{DisablePatterns: true})
	e := mustEntry(t, "MIT")
	text := "Copyright (c) 2024 Example Corp\n\n" + e.Text

	out := d.Detect("LICENSE", text)
	if len(out) == 0 {
		t.Fatal("expected a fuzzy match for a near-verbatim MIT text")
	}
	f := out[0]
	if f.SPDXID != "MIT" {
		t.Fatalf("got %s, want MIT: %+v", f.SPDXID, out)
	}
	if f.Confidence <= 0.8 {
		t.Errorf("near-verbatim text should score above 0.8, got %v", f.Confidence)
	}
}

func TestDetectGPLNotice(t *testing.T) {
	d := newTestDetector(Options{DisablePatterns: true, FuzzyThreshold: 0.5})
	text := "This program is free software: you can redistribute it and/or modify " +
		"it under the terms of the GNU General Public License as published by " +
		"the Free Software Foundation, either version 3 of the License."

	out := d.Detect("COPYING", text)
	if len(out) == 0 {
		t.Fatal("expected a match for the GPL how-to-apply notice")
	}
	if out[0].SPDXID != "GPL-3.0" {
		t.Errorf("got %s, want GPL-3.0: %+v", out[0].SPDXID, out)
	}
}

func TestDetectRandomProseNoMatch(t *testing.T) {
	d := newTestDetector(Options{})
	out := d.Detect("README.md", "This is just some random text that has nothing to do with any legal terms at all.")
	if len(out) != 0 {
		t.Errorf("expected no findings, got %+v", out)
	}
}

func TestDetectDeterministic(t *testing.T) {
	d := newTestDetector(Options{})
	text := "Dual licensed under MIT and Apache-2.0, at your option."
	first := d.Detect("README.md", text)
	for i := 0; i < 5; i++ {
		if got := d.Detect("README.md", text); !reflect.DeepEqual(first, got) {
			t.Fatalf("detection is not deterministic:\n%+v\n%+v", first, got)
		}
	}
}

func TestDetectDualLicenseProse(t *testing.T) {
	d := newTestDetector(Options{})
	out := d.Detect("README.md", "Dual licensed under MIT and Apache-2.0, at your option.")

	ids := map[string]bool{}
	for _, f := range out {
		ids[f.SPDXID] = true
	}
	if !ids["MIT"] || !ids["Apache-2.0"] {
		t.Errorf("both prose mentions must surface, got %+v", out)
	}
}

func TestSequenceCandidatesPrefersBestRatio(t *testing.T) {
	// Two references clear the threshold; the cap must keep the best
	// ratio, not the first corpus entry.
	c := corpus.New([]corpus.Entry{
		{ID: "Worse", Name: "Worse", Text: "alpha beta gamma delta epsilon zeta kappa lambda"},
		{ID: "Best", Name: "Best", Text: "alpha beta gamma delta epsilon zeta eta theta"},
	})
	d := New(c, Options{MaxSequence: 1, DisablePatterns: true})

	out := d.sequenceCandidates("alpha beta gamma delta epsilon zeta eta theta")
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(out), out)
	}
	if out[0].SPDXID != "Best" || out[0].Confidence != 1.0 {
		t.Errorf("got %+v, want Best at 1.0", out[0])
	}
}

func TestDetectMinConfidenceFilter(t *testing.T) {
	d := newTestDetector(Options{MinConfidence: 0.95})
	out := d.Detect("README.md", "released under the MIT license for everyone")
	if len(out) != 0 {
		t.Errorf("prose finding at 0.6 should be filtered, got %+v", out)
	}
}

func TestDetectMetadata(t *testing.T) {
	d := newTestDetector(Options{})
	f := d.DetectMetadata(map[string]any{"license": "GPLv3"})
	if f == nil || f.SPDXID != "GPL-3.0" {
		t.Fatalf("got %+v, want GPL-3.0", f)
	}
	if f := d.DetectMetadata(nil); f != nil {
		t.Errorf("nil fields should yield nil, got %+v", f)
	}
}

func TestDetectFromFiles(t *testing.T) {
	d := newTestDetector(Options{})
	mit := mustEntry(t, "MIT")
	apache := mustEntry(t, "Apache-2.0")

	out := d.DetectFromFiles([]File{
		{Name: "LICENSE-MIT", Content: []byte(mit.Text)},
		{Name: "LICENSE-APACHE", Content: []byte(apache.Text)},
		{Name: "README.md", Content: []byte(mit.Text)},
	})

	ids := map[string]int{}
	for _, f := range out {
		ids[f.SPDXID]++
	}
	if ids["MIT"] != 1 || ids["Apache-2.0"] != 1 {
		t.Errorf("expected MIT and Apache-2.0 exactly once each, got %+v", out)
	}
}

func TestDetectFromFilesSkipsUnreadable(t *testing.T) {
	d := newTestDetector(Options{})
	out := d.DetectFromFiles([]File{
		{Name: "LICENSE", Content: []byte{0xff, 0xfe, 0x00, 0x01}},
		{Name: "COPYING", Content: []byte("MIT")},
	})
	if len(out) != 1 || out[0].SPDXID != "MIT" {
		t.Errorf("expected MIT from COPYING only, got %+v", out)
	}
}

func TestDetectFromFilesEmpty(t *testing.T) {
	d := newTestDetector(Options{})
	if out := d.DetectFromFiles(nil); out != nil {
		t.Errorf("expected nil, got %+v", out)
	}
}

func TestSuppressed(t *testing.T) {
	if !suppressed(types.NewFinding("Pixar", "", 0.99, types.MethodDiceBigram)) {
		t.Error("Pixar via bigram similarity must be suppressed")
	}
	if !suppressed(types.NewFinding("Pixar", "", 0.99, types.MethodFullText)) {
		t.Error("Pixar via full-text similarity must be suppressed")
	}
	if suppressed(types.NewFinding("Pixar", "", 1.0, types.MethodSPDXIdentifier)) {
		t.Error("an explicit Pixar SPDX tag is trusted")
	}
	if suppressed(types.NewFinding("Apache-2.0", "", 0.99, types.MethodDiceBigram)) {
		t.Error("suppression must not leak to other identifiers")
	}
}

func TestPixarSimilarityHitsDropped(t *testing.T) {
	d := newTestDetector(Options{DisablePatterns: true})
	text := "The Pixar terms permit redistribution of tokenized render assets under limited conditions."
	d.AddReferenceSnippet("Pixar", text)

	for _, f := range d.Detect("LICENSE", text) {
		if f.SPDXID == "Pixar" {
			t.Fatalf("suppressed finding surfaced: %+v", f)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.FuzzyThreshold != 0.6 || o.SequenceThreshold != 0.7 {
		t.Errorf("unexpected threshold defaults: %+v", o)
	}
	if o.MaxFuzzy != 3 || o.MaxSequence != 2 {
		t.Errorf("unexpected cap defaults: %+v", o)
	}
	// Explicit values survive.
	o = Options{FuzzyThreshold: 0.5, MaxFuzzy: 1}.withDefaults()
	if o.FuzzyThreshold != 0.5 || o.MaxFuzzy != 1 {
		t.Errorf("explicit values overridden: %+v", o)
	}
}
