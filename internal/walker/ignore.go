package walker

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher holds exclusion patterns from a .licetignore file. Patterns ending
// in "/" exclude whole directory subtrees; other patterns are globs matched
// against both the relative path and the base name.
type Matcher struct {
	patterns []string
}

// Load reads an ignore file. Blank lines and # comments are skipped.
func Load(path string) (Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matcher{}, err
	}
	defer f.Close()

	var m Matcher
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// LoadRoot loads root/.licetignore, returning an empty matcher when the file
// does not exist.
func LoadRoot(root string) Matcher {
	m, err := Load(filepath.Join(root, ".licetignore"))
	if err != nil {
		return Matcher{}
	}
	return m
}

// Match reports whether the relative path is excluded.
func (m Matcher) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := path.Base(rel)
	for _, p := range m.patterns {
		if dir, ok := strings.CutSuffix(p, "/"); ok {
			if rel == dir || strings.HasPrefix(rel, dir+"/") || strings.Contains(rel, "/"+dir+"/") {
				return true
			}
			continue
		}
		if ok, err := doublestar.Match(p, base); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
