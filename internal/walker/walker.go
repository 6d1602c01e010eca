// Package walker discovers candidate files for license detection under a
// directory tree: conventional license files and package manifests. It skips
// VCS metadata, dependency trees, and binary content.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/licet/licet/internal/detect"
)

// DefaultMaxBytes caps how much of any single file is considered. License
// files are small; anything past this is not one.
const DefaultMaxBytes = 1 << 20

// skipDirs are directory names never descended into.
var skipDirs = map[string]bool{
	".git": true, ".hg": true, ".svn": true,
	"node_modules": true, "vendor": true, "bower_components": true,
	"__pycache__": true, ".venv": true, "venv": true,
	"target": true, "dist": true, "build": true,
	".idea": true, ".vscode": true,
}

// Collect walks root and returns every file whose relative path passes keep,
// with content loaded. Unreadable entries are skipped, not errors; only a
// broken root fails the walk.
func Collect(root string, ign Matcher, keep func(rel string) bool, maxBytes int64) ([]detect.File, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	var out []detect.File
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if p != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(root, p)
		rel = filepath.ToSlash(rel)
		if ign.Match(rel) || !keep(rel) {
			return nil
		}
		info, err := d.Info()
		if err != nil || info.Size() > maxBytes {
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil || looksBinary(b) {
			return nil
		}
		out = append(out, detect.File{Name: rel, Content: b})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// looksBinary sniffs the leading bytes for NULs.
func looksBinary(b []byte) bool {
	n := len(b)
	if n > 800 {
		n = 800
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
