package detect

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-enry/go-license-detector/v4/licensedb"
	"github.com/go-enry/go-license-detector/v4/licensedb/filer"
	"github.com/licet/licet/internal/patterns"
	"github.com/licet/licet/internal/types"
)

// EnryBackend detects licenses with go-license-detector. The library wants
// a directory to scan, so content is materialized into a temp dir first.
// Any failure degrades to the Fallback backend; nothing propagates.
type EnryBackend struct {
	Fallback Backend
}

// Detect writes the text to a temp LICENSE file and scans it.
func (b *EnryBackend) Detect(source, text string) []types.Finding {
	name := "LICENSE"
	if patterns.IsLicenseFilename(source) {
		name = filepath.Base(source)
	}
	out := b.scan([]File{{Name: name, Content: []byte(text)}}, source)
	if len(out) == 0 && b.Fallback != nil {
		return b.Fallback.Detect(source, text)
	}
	return out
}

// DetectFromFiles materializes candidate license files and scans them in
// one pass.
func (b *EnryBackend) DetectFromFiles(files []File) []types.Finding {
	var cand []File
	for _, f := range files {
		if patterns.IsLicenseFilename(f.Name) {
			cand = append(cand, f)
		}
	}
	out := b.scan(cand, "")
	if len(out) == 0 && b.Fallback != nil {
		return b.Fallback.DetectFromFiles(files)
	}
	return out
}

func (b *EnryBackend) scan(files []File, source string) []types.Finding {
	if len(files) == 0 {
		return nil
	}
	dir, err := os.MkdirTemp("", "licet-enry-*")
	if err != nil {
		return nil
	}
	defer os.RemoveAll(dir)
	wrote := false
	for _, f := range files {
		base := filepath.Base(f.Name)
		if base == "" || base == "." {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, base), f.Content, 0644); err != nil {
			continue
		}
		wrote = true
	}
	if !wrote {
		return nil
	}
	fr, err := filer.FromDirectory(dir)
	if err != nil {
		return nil
	}
	results, err := licensedb.Detect(fr)
	if err != nil {
		return nil
	}
	out := make([]types.Finding, 0, len(results))
	for id, match := range results {
		f := types.NewFinding(id, id, float64(match.Confidence), types.MethodExternal)
		f.SourcePath = source
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].SPDXID < out[j].SPDXID
	})
	return types.Dedupe(out)
}
