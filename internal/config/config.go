package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/licet/licet/internal/detect"
)

// FileConfig is the on-disk YAML configuration shape for licet. Fields are
// pointers so an absent key is distinguishable from a zero value.
type FileConfig struct {
	Backend           *string  `yaml:"backend"`
	CorpusPath        *string  `yaml:"corpus_path"`
	FuzzyThreshold    *float64 `yaml:"fuzzy_threshold"`
	SequenceThreshold *float64 `yaml:"sequence_threshold"`
	MinConfidence     *float64 `yaml:"min_confidence"`
	MaxFuzzy          *int     `yaml:"max_fuzzy"`
	MaxSequence       *int     `yaml:"max_sequence"`
	NoFuzzy           *bool    `yaml:"no_fuzzy"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .licet.yml/.yaml and licet.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".licet.yml", ".licet.yaml", "licet.yml", "licet.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "licet", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// GetBackend returns the configured backend name, defaulting to "native".
func (fc FileConfig) GetBackend() string {
	if fc.Backend == nil || *fc.Backend == "" {
		return "native"
	}
	return *fc.Backend
}

// GetCorpusPath returns the explicit corpus file path or empty string.
func (fc FileConfig) GetCorpusPath() string {
	if fc.CorpusPath == nil {
		return ""
	}
	return *fc.CorpusPath
}

// Options converts the file config into detector options, applying the
// detector's defaults for absent keys.
func (fc FileConfig) Options() detect.Options {
	var o detect.Options
	if fc.FuzzyThreshold != nil {
		o.FuzzyThreshold = *fc.FuzzyThreshold
	}
	if fc.SequenceThreshold != nil {
		o.SequenceThreshold = *fc.SequenceThreshold
	}
	if fc.MinConfidence != nil {
		o.MinConfidence = *fc.MinConfidence
	}
	if fc.MaxFuzzy != nil {
		o.MaxFuzzy = *fc.MaxFuzzy
	}
	if fc.MaxSequence != nil {
		o.MaxSequence = *fc.MaxSequence
	}
	if fc.NoFuzzy != nil {
		o.DisableFuzzy = *fc.NoFuzzy
	}
	return o
}
