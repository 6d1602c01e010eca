package licet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/licet/licet/internal/detect"
	"github.com/licet/licet/internal/manifest"
	"github.com/licet/licet/internal/patterns"
	"github.com/licet/licet/internal/report"
	"github.com/licet/licet/internal/types"
	"github.com/licet/licet/internal/walker"
)

var (
	flagText  string
	flagField string
)

func init() {
	cmd := &cobra.Command{
		Use:   "detect [path]",
		Short: "Detect licenses in a file, directory, or text",
		Long:  "Detect scans a license file, a directory tree of license files and package manifests, a raw --text value, or a metadata --field value, and prints the detected licenses ranked by confidence.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDetect,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagText, "text", "", "detect licenses in this text instead of a path")
	cmd.Flags().StringVar(&flagField, "field", "", "detect a license from a metadata field value (e.g. the npm license string)")
}

func runDetect(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)
	backend := newBackend(logger)

	var (
		source   string
		findings []types.Finding
		sources  int
	)

	switch {
	case flagField != "":
		source = "metadata"
		if f := nativeDetector(backend).DetectMetadata(map[string]any{"license": flagField}); f != nil {
			findings = []types.Finding{*f}
		}
	case flagText != "":
		source = "text"
		findings = backend.Detect(source, flagText)
	case len(args) == 1:
		var err error
		source, findings, sources, err = detectPath(backend, logger, args[0])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("nothing to detect: pass a path, --text, or --field")
	}

	if flagJSON {
		return report.WriteJSON(os.Stdout, source, findings)
	}
	report.PrintTable(os.Stdout, findings, report.PrintOptions{NoColor: flagNoColor, Sources: sources})
	return nil
}

// nativeDetector unwraps the configured backend down to the pattern+fuzzy
// detector. Metadata fields resolve through the synonym table; the external
// backend has no notion of them.
func nativeDetector(backend detect.Backend) *detect.Detector {
	if d, ok := backend.(*detect.Detector); ok {
		return d
	}
	if eb, ok := backend.(*detect.EnryBackend); ok {
		if d, ok := eb.Fallback.(*detect.Detector); ok {
			return d
		}
	}
	return detect.New(nil, detect.Options{})
}

// detectPath scans a single file or a whole directory tree, returning the
// findings and the number of files scanned. Unreadable files are skipped,
// not fatal.
func detectPath(backend detect.Backend, logger *log.Logger, path string) (string, []types.Finding, int, error) {
	st, err := os.Stat(path)
	if err != nil {
		return "", nil, 0, err
	}
	if !st.IsDir() {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", nil, 0, err
		}
		name := filepath.Base(path)
		if fields, ok := manifest.FieldsForFile(name, b); ok {
			if f := nativeDetector(backend).DetectMetadata(fields); f != nil {
				f.SourcePath = name
				return path, []types.Finding{*f}, 1, nil
			}
		}
		return path, backend.Detect(name, string(b)), 1, nil
	}

	keep := func(rel string) bool {
		return patterns.IsLicenseFilename(rel) || manifest.IsManifest(rel)
	}
	files, err := walker.Collect(path, walker.LoadRoot(path), keep, walker.DefaultMaxBytes)
	if err != nil {
		return "", nil, 0, err
	}

	var licenseFiles []detect.File
	var findings []types.Finding
	for _, f := range files {
		if fields, ok := manifest.FieldsForFile(f.Name, f.Content); ok {
			if m := nativeDetector(backend).DetectMetadata(fields); m != nil {
				m.SourcePath = f.Name
				findings = append(findings, *m)
			}
			continue
		}
		licenseFiles = append(licenseFiles, f)
	}
	logger.Debug("scanning candidates", "licenseFiles", len(licenseFiles), "manifests", len(files)-len(licenseFiles))
	findings = append(findings, backend.DetectFromFiles(licenseFiles)...)
	return path, types.Dedupe(findings), len(files), nil
}
