package detect

import (
	"github.com/licet/licet/internal/corpus"
	"github.com/licet/licet/internal/types"
)

// Backend is a swappable detection strategy. The native pattern+fuzzy
// detector and the external go-license-detector integration both satisfy
// it, so callers pick one by configuration without touching detection
// logic.
type Backend interface {
	Detect(source, text string) []types.Finding
	DetectFromFiles(files []File) []types.Finding
}

// ForName returns the backend for a config value. Unknown names fall back
// to the native detector.
func ForName(name string, c *corpus.Corpus, opts Options) Backend {
	native := New(c, opts)
	if name == "enry" {
		return &EnryBackend{Fallback: native}
	}
	return native
}
