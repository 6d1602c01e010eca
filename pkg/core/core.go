package core

import (
	"github.com/licet/licet/internal/corpus"
	"github.com/licet/licet/internal/detect"
	"github.com/licet/licet/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type (
	Finding         = types.Finding
	ConfidenceLevel = types.ConfidenceLevel
	Options         = detect.Options
	File            = detect.File
	Detector        = detect.Detector
)

// NewDetector builds a detector over the best available corpus (explicit
// corpus files can be supplied through NewDetectorWithCorpus).
func NewDetector(opts Options) *Detector {
	return detect.New(corpus.Load(""), opts)
}

// NewDetectorWithCorpus builds a detector from an SPDX license-list JSON
// file, degrading to the builtin corpus when the file cannot be read.
func NewDetectorWithCorpus(path string, opts Options) *Detector {
	return detect.New(corpus.Load(path), opts)
}

// LevelFor buckets a confidence score, exposed for callers that build
// their own findings.
func LevelFor(confidence float64) ConfidenceLevel { return types.LevelFor(confidence) }
