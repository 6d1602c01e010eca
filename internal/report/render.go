// Package report renders detection results for the CLI: a findings table
// for humans and JSON for pipelines.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/licet/licet/internal/types"
)

// PrintOptions controls table rendering.
type PrintOptions struct {
	NoColor bool
	Sources int
}

// PrintTable writes findings as an aligned table. Findings are expected to
// arrive already sorted by confidence descending.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No license detected")
		return
	}
	table := tablewriter.NewWriter(w)
	table.Header("SPDX ID", "Name", "Confidence", "Level", "Method", "Source")
	for _, f := range findings {
		level := string(f.Level)
		if !opts.NoColor {
			level = colorLevel(f.Level)
		}
		table.Append([]string{
			f.SPDXID,
			f.Name,
			fmt.Sprintf("%.2f", f.Confidence),
			level,
			string(f.Method),
			f.SourcePath,
		})
	}
	table.Render()
	if opts.Sources > 0 {
		fmt.Fprintf(w, "\nLicenses: %d (from %d sources)\n", len(findings), opts.Sources)
	}
}

func colorLevel(l types.ConfidenceLevel) string {
	switch l {
	case types.LevelExact, types.LevelHigh:
		return "\x1b[32m" + string(l) + "\x1b[0m" // green
	case types.LevelMedium:
		return "\x1b[33m" + string(l) + "\x1b[0m" // yellow
	default:
		return "\x1b[36m" + string(l) + "\x1b[0m" // cyan
	}
}
