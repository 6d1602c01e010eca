// Package manifest reads ecosystem package manifests just far enough to pull
// out their license fields. JSON is tried first, then YAML; both decode into
// the generic field map the detector consumes.
package manifest

import (
	"encoding/json"
	"path"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// manifestNames are base names of metadata files whose license fields are
// worth reading, lowercased.
var manifestNames = map[string]bool{
	"package.json":  true,
	"composer.json": true,
	"bower.json":    true,
	"pubspec.yaml":  true,
	"galaxy.yml":    true,
	"citation.cff":  true,
	"package.yaml":  true,
}

// IsManifest reports whether the file name is a known package manifest.
func IsManifest(name string) bool {
	name = strings.ReplaceAll(name, "\\", "/")
	return manifestNames[strings.ToLower(path.Base(name))]
}

// Fields decodes a manifest into a generic key/value map. Returns false when
// the content is neither valid JSON nor a YAML mapping.
func Fields(content []byte) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal(content, &m); err == nil && len(m) > 0 {
		return m, true
	}
	m = nil
	if err := yaml.Unmarshal(content, &m); err == nil && len(m) > 0 {
		return m, true
	}
	return nil, false
}

// FieldsForFile is Fields gated by the file name check.
func FieldsForFile(name string, content []byte) (map[string]any, bool) {
	if !IsManifest(filepath.ToSlash(name)) {
		return nil, false
	}
	return Fields(content)
}
