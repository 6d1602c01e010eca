// Package corpus holds the SPDX reference data the detectors match against:
// license identifiers, canonical names, and normalized full texts. A Corpus
// is immutable after construction, so concurrent readers need no locking.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
)

// Entry is one known license: identifier, display name, and full text.
// Normalized and Fingerprint are derived at construction time.
type Entry struct {
	ID          string
	Name        string
	Text        string
	Normalized  string
	Fingerprint uint64
}

// Corpus is a read-only set of license entries keyed by SPDX identifier.
type Corpus struct {
	entries map[string]Entry
	order   []string
	byPrint map[uint64]string
}

var (
	reURL   = regexp.MustCompile(`\bhttps?://\S+|\bwww\.\S+`)
	reEmail = regexp.MustCompile(`\S+@\S+`)
	rePunct = regexp.MustCompile(`[^a-z0-9\s]+`)
	reSpace = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, drops URLs and email addresses, strips
// punctuation to whitespace, and collapses runs of whitespace. All text
// comparison in the detectors happens on this form.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reURL.ReplaceAllString(s, " ")
	s = reEmail.ReplaceAllString(s, " ")
	s = rePunct.ReplaceAllString(s, " ")
	s = reSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Fingerprint hashes a normalized text for exact-text lookups.
func Fingerprint(normalized string) uint64 {
	return xxhash.Sum64String(normalized)
}

// New builds a corpus from entries, computing normalized texts and
// fingerprints. Entries with an empty ID or text are dropped.
func New(entries []Entry) *Corpus {
	c := &Corpus{
		entries: make(map[string]Entry, len(entries)),
		byPrint: make(map[uint64]string, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" || e.Text == "" {
			continue
		}
		if _, dup := c.entries[e.ID]; dup {
			continue
		}
		if e.Name == "" {
			e.Name = e.ID
		}
		e.Normalized = Normalize(e.Text)
		e.Fingerprint = Fingerprint(e.Normalized)
		c.entries[e.ID] = e
		c.order = append(c.order, e.ID)
		c.byPrint[e.Fingerprint] = e.ID
	}
	return c
}

// NewBuiltin returns the corpus bundled with the binary.
func NewBuiltin() *Corpus {
	return New(builtin())
}

// Get returns the entry for an SPDX identifier.
func (c *Corpus) Get(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Has reports whether the identifier is known.
func (c *Corpus) Has(id string) bool {
	_, ok := c.entries[id]
	return ok
}

// Len returns the number of entries.
func (c *Corpus) Len() int { return len(c.order) }

// IDs returns the identifiers in load order.
func (c *Corpus) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Each calls fn for every entry in load order.
func (c *Corpus) Each(fn func(Entry)) {
	for _, id := range c.order {
		fn(c.entries[id])
	}
}

// ByFingerprint returns the entry whose normalized text hashes to the same
// value as the given normalized text. Used as a cheap exact-match path
// before any similarity scoring.
func (c *Corpus) ByFingerprint(normalized string) (Entry, bool) {
	id, ok := c.byPrint[Fingerprint(normalized)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[id], true
}

// fileCorpus mirrors the SPDX license-list JSON shape.
type fileCorpus struct {
	Version  string      `json:"licenseListVersion"`
	Licenses []fileEntry `json:"licenses"`
}

type fileEntry struct {
	ID   string `json:"licenseId"`
	Name string `json:"name"`
	Text string `json:"licenseText"`
}

// LoadFile reads a corpus from an SPDX license-list JSON file.
func LoadFile(path string) (*Corpus, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(b)
}

func parse(b []byte) (*Corpus, error) {
	var fc fileCorpus
	if err := json.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	entries := make([]Entry, 0, len(fc.Licenses))
	for _, l := range fc.Licenses {
		entries = append(entries, Entry{ID: l.ID, Name: l.Name, Text: l.Text})
	}
	c := New(entries)
	if c.Len() == 0 {
		return nil, fmt.Errorf("parse corpus: no usable entries")
	}
	return c, nil
}

// Load returns the best available corpus: the explicit path if given, the
// user cache otherwise, and the builtin set as the last resort. It never
// fails; a broken source only means coarser detection downstream.
func Load(path string) *Corpus {
	if path != "" {
		if c, err := LoadFile(path); err == nil {
			return c
		}
	}
	if c, err := LoadCached(); err == nil {
		return c
	}
	return NewBuiltin()
}
