package corpus

import (
	"os"
	"path/filepath"
)

// cachePath returns the on-disk location of the cached corpus JSON.
// Prefers the user cache dir; falls back to the home directory.
func cachePath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "licet", "spdx.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".licet", "spdx.json")
}

// LoadCached reads the corpus from the user cache, if present.
func LoadCached() (*Corpus, error) {
	p := cachePath()
	if p == "" {
		return nil, os.ErrNotExist
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return parse(b)
}

// SaveCache stores raw corpus JSON in the user cache for later runs. The
// data is validated before writing so a bad download never poisons the
// cache.
func SaveCache(data []byte) error {
	if _, err := parse(data); err != nil {
		return err
	}
	p := cachePath()
	if p == "" {
		return os.ErrNotExist
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

// ClearCache removes the cached corpus.
func ClearCache() error {
	p := cachePath()
	if p == "" {
		return nil
	}
	err := os.Remove(p)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
