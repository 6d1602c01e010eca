package types

// ConfidenceLevel is a coarse-grained bucket derived from a numeric confidence.
type ConfidenceLevel string

const (
	LevelExact  ConfidenceLevel = "exact"
	LevelHigh   ConfidenceLevel = "high"
	LevelMedium ConfidenceLevel = "medium"
	LevelLow    ConfidenceLevel = "low"
	LevelNone   ConfidenceLevel = "none"
)

// Method identifies which strategy produced a finding.
type Method string

const (
	MethodSPDXIdentifier Method = "spdx_identifier"
	MethodRegexField     Method = "regex_field"
	MethodRegexPattern   Method = "regex_pattern"
	MethodDiceBigram     Method = "dice_sorensen_bigram"
	MethodDiceUnigram    Method = "dice_sorensen_unigram"
	MethodFullText       Method = "full_text_similarity"
	MethodExternal       Method = "external_backend"
)

// Sentinel identifiers used when no SPDX mapping exists.
const (
	Proprietary = "Proprietary"
	NoAssertion = "NO-ASSERTION"
)

// Finding describes one detected license candidate: the SPDX identifier,
// the display name, the method that produced it, and a confidence in [0,1].
type Finding struct {
	SPDXID     string          `json:"spdx_id"`
	Name       string          `json:"name"`
	Confidence float64         `json:"confidence"`
	Level      ConfidenceLevel `json:"confidence_level"`
	Method     Method          `json:"detection_method"`
	SourcePath string          `json:"source_path,omitempty"`
}

// LevelFor buckets a numeric confidence. Findings must always carry the
// level implied by their confidence; construct them through NewFinding.
func LevelFor(confidence float64) ConfidenceLevel {
	switch {
	case confidence >= 0.95:
		return LevelExact
	case confidence >= 0.8:
		return LevelHigh
	case confidence >= 0.6:
		return LevelMedium
	case confidence >= 0.4:
		return LevelLow
	default:
		return LevelNone
	}
}

// NewFinding builds a Finding with the level derived from confidence.
func NewFinding(spdxID, name string, confidence float64, method Method) Finding {
	if name == "" {
		name = spdxID
	}
	return Finding{
		SPDXID:     spdxID,
		Name:       name,
		Confidence: confidence,
		Level:      LevelFor(confidence),
		Method:     method,
	}
}
