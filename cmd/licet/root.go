package licet

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/licet/licet/internal/config"
	"github.com/licet/licet/internal/corpus"
	"github.com/licet/licet/internal/detect"
)

var (
	flagJSON          bool
	flagNoColor       bool
	flagVerbose       bool
	flagMinConfidence float64
	flagBackend       string
	flagCorpusPath    string
	flagConfigPath    string

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the licet CLI.
var rootCmd = &cobra.Command{
	Use:           "licet",
	Short:         "Detect software licenses in text and package files",
	Long:          "licet identifies SPDX licenses in license files, metadata fields and free text using pattern and fuzzy matching, and reports each match with a confidence score.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the licet CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Float64Var(&flagMinConfidence, "min-confidence", 0.0, "only report findings with confidence >= value (0-1)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "detection backend: native|enry")
	rootCmd.PersistentFlags().StringVar(&flagCorpusPath, "corpus", "", "path to an SPDX license-list JSON corpus")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a config file")
}

// newLogger creates a logger with timestamp formatting, filtering at debug
// level only when --verbose is set.
func newLogger(w io.Writer) *log.Logger {
	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// loadConfig resolves the effective file config: explicit path, then
// repo-local, then global, then empty.
func loadConfig() config.FileConfig {
	if flagConfigPath != "" {
		if cfg, err := config.LoadFile(flagConfigPath); err == nil {
			return cfg
		}
	}
	if cfg, err := config.LoadLocal("."); err == nil {
		return cfg
	}
	if cfg, err := config.LoadGlobal(); err == nil {
		return cfg
	}
	return config.FileConfig{}
}

// newBackend builds the configured detection backend over the best
// available corpus. Flags override file config.
func newBackend(logger *log.Logger) detect.Backend {
	cfg := loadConfig()

	corpusPath := cfg.GetCorpusPath()
	if flagCorpusPath != "" {
		corpusPath = flagCorpusPath
	}
	c := corpus.Load(corpusPath)
	logger.Debug("corpus loaded", "entries", c.Len())

	opts := cfg.Options()
	if flagMinConfidence > 0 {
		opts.MinConfidence = flagMinConfidence
	}

	backend := cfg.GetBackend()
	if flagBackend != "" {
		backend = flagBackend
	}
	logger.Debug("backend selected", "backend", backend)
	return detect.ForName(backend, c, opts)
}
