package core

import (
	"encoding/json"

	"github.com/licet/licet/internal/types"
)

// MarshalFindings encodes findings as indented JSON. A nil slice encodes
// as an empty array so consumers never see null.
func MarshalFindings(findings []Finding) ([]byte, error) {
	if findings == nil {
		findings = []Finding{}
	}
	return json.MarshalIndent(findings, "", "  ")
}

// UnmarshalFindings decodes findings JSON and restores the detector's
// output invariants: levels re-derived from confidence, one finding per
// SPDX id at the highest confidence, sorted descending. Hand-edited or
// merged result files therefore come back in canonical form.
func UnmarshalFindings(data []byte) ([]Finding, error) {
	var fs []Finding
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, err
	}
	for i := range fs {
		fs[i].Level = types.LevelFor(fs[i].Confidence)
	}
	return types.Dedupe(fs), nil
}
