// Package patterns recognizes licenses through cheap, high-precision
// heuristics: SPDX identifier tags, structured metadata fields, and known
// license-name tokens. It runs before any fuzzy comparison and never
// errors; unrecognizable input is simply a non-match.
package patterns

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/licet/licet/internal/corpus"
	"github.com/licet/licet/internal/types"
)

// Confidence assigned per recognition path. Dedicated fields and
// license-named files are near-certain; a name dropped in prose is not.
// The file variants are spelled out rather than computed by adding a
// boost: 0.7+0.2 is 0.8999… in float64 and misses the ≥0.9 bar.
const (
	confValidatedTag  = 1.0
	confRawTag        = 0.85
	confField         = 0.9
	confBareToken     = 0.7
	confBareTokenFile = 0.9
	confProse         = 0.6
	confProseFile     = 0.8
)

var (
	reSPDXTag    = regexp.MustCompile(`(?i)spdx-license-identifier:[ \t]*([^\r\n]+)`)
	reFieldQuote = regexp.MustCompile(`(?i)\blicen[cs]e["']?\s*[:=]\s*["']([^"'\r\n]+)["']`)
	reFieldLine  = regexp.MustCompile(`(?im)^[ \t]*licen[cs]e:[ \t]*([^\r\n]+)$`)
	reXMLName    = regexp.MustCompile(`(?is)<license>.*?<name>([^<]+)</name>`)
	reXMLSimple  = regexp.MustCompile(`(?i)<license(?:\s+type="expression")?>([^<\r\n]+)</license>`)
	reClassifier = regexp.MustCompile(`(?im)^.*\blicense[ \t]*::[ \t]*(?:osi approved[ \t]*::[ \t]*)?([^:\r\n]+?)[ \t]*$`)
)

// licenseFileGlobs match filenames that conventionally carry license text.
var licenseFileGlobs = []string{
	"license", "license.*", "license-*", "licence", "licence.*", "licence-*",
	"copying", "copying.*", "copyright", "copyright.*",
	"notice", "notice.*", "legal", "legal.*", "patents", "patents.*",
}

// Detector recognizes licenses via patterns and the synonym table. The
// corpus, when present, validates SPDX tags and supplies display names;
// a nil corpus only loses that validation.
type Detector struct {
	corpus *corpus.Corpus
}

// New builds a pattern detector over the given corpus (which may be nil).
func New(c *corpus.Corpus) *Detector {
	return &Detector{corpus: c}
}

// IsLicenseFilename reports whether the base name looks like a license
// file (LICENSE, COPYING.txt, NOTICE, ...), case-insensitive.
func IsLicenseFilename(name string) bool {
	base := strings.ToLower(baseName(name))
	if base == "" {
		return false
	}
	for _, g := range licenseFileGlobs {
		if ok, err := doublestar.Match(g, base); err == nil && ok {
			return true
		}
	}
	return false
}

func baseName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// DetectText applies the pattern strategies in priority order and returns
// the first hit, or nil when nothing matches. filename, when known, boosts
// confidence for license-named files.
func (d *Detector) DetectText(text, filename string) *types.Finding {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if f := d.detectSPDXTag(text); f != nil {
		return f
	}
	if f := d.detectField(text); f != nil {
		return f
	}
	if f := d.detectBareToken(text, filename); f != nil {
		return f
	}
	if ids := scanProse(text); len(ids) > 0 {
		conf := confProse
		if IsLicenseFilename(filename) {
			conf = confProseFile
		}
		f := d.finding(ids[0], conf, types.MethodRegexPattern)
		return &f
	}
	return nil
}

// DetectMetadata resolves an already-parsed license field (string, list,
// or object) through the synonym table. Returns nil when the field is
// absent or unrecognized.
func (d *Detector) DetectMetadata(fields map[string]any) *types.Finding {
	for _, key := range []string{"license", "licenses", "license_expression"} {
		v, ok := fields[key]
		if !ok {
			continue
		}
		fv, ok := ParseField(v)
		if !ok {
			continue
		}
		raw := fv.raw()
		id := NormalizeID(raw)
		if id == "" && d.corpus != nil && d.corpus.Has(strings.TrimSpace(raw)) {
			id = strings.TrimSpace(raw)
		}
		if id == "" {
			continue
		}
		f := d.finding(id, confField, types.MethodRegexField)
		return &f
	}
	return nil
}

// DetectMultiple scans for every license the pattern rules can find, e.g.
// dual-license statements, and returns distinct matches sorted by
// confidence descending.
func (d *Detector) DetectMultiple(text string) []types.Finding {
	var out []types.Finding
	for _, m := range reSPDXTag.FindAllStringSubmatch(text, -1) {
		if f := d.tagFinding(m[1]); f != nil {
			out = append(out, *f)
		}
	}
	for _, re := range []*regexp.Regexp{reFieldQuote, reFieldLine, reXMLName, reXMLSimple, reClassifier} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if id := NormalizeID(m[1]); id != "" {
				out = append(out, d.finding(id, confField, types.MethodRegexField))
			}
		}
	}
	for _, id := range scanProse(text) {
		out = append(out, d.finding(id, confProse, types.MethodRegexPattern))
	}
	return types.Dedupe(out)
}

func (d *Detector) detectSPDXTag(text string) *types.Finding {
	m := reSPDXTag.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return d.tagFinding(m[1])
}

// tagFinding builds a finding from the raw value of an SPDX tag. A value
// that validates against the corpus or synonym table is near-certain; an
// unknown identifier is still reported, at lower confidence.
func (d *Detector) tagFinding(raw string) *types.Finding {
	id := firstExpressionID(raw)
	if id == "" {
		return nil
	}
	if d.corpus != nil && d.corpus.Has(id) {
		f := d.finding(id, confValidatedTag, types.MethodSPDXIdentifier)
		return &f
	}
	if mapped := NormalizeID(id); mapped != "" {
		f := d.finding(mapped, confValidatedTag, types.MethodSPDXIdentifier)
		return &f
	}
	f := d.finding(id, confRawTag, types.MethodSPDXIdentifier)
	return &f
}

// firstExpressionID extracts the leading identifier from an SPDX tag
// value, tolerating expressions like "(MIT OR Apache-2.0)".
func firstExpressionID(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, "()")
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], "()")
}

func (d *Detector) detectField(text string) *types.Finding {
	for _, re := range []*regexp.Regexp{reFieldQuote, reFieldLine, reXMLName, reXMLSimple, reClassifier} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if id := NormalizeID(m[1]); id != "" {
			f := d.finding(id, confField, types.MethodRegexField)
			return &f
		}
	}
	return nil
}

// detectBareToken handles input that is itself a license name or SPDX id.
func (d *Detector) detectBareToken(text, filename string) *types.Finding {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) == 0 || len(trimmed) > 64 || strings.ContainsAny(trimmed, "\r\n") {
		return nil
	}
	id := NormalizeID(trimmed)
	if id == "" && d.corpus != nil && d.corpus.Has(trimmed) {
		id = trimmed
	}
	if id == "" {
		return nil
	}
	conf := confBareToken
	if IsLicenseFilename(filename) {
		conf = confBareTokenFile
	}
	f := d.finding(id, conf, types.MethodRegexPattern)
	return &f
}

func (d *Detector) finding(id string, conf float64, method types.Method) types.Finding {
	name := id
	if d.corpus != nil {
		if e, ok := d.corpus.Get(id); ok {
			name = e.Name
		}
	}
	return types.NewFinding(id, name, conf, method)
}
