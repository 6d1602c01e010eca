// Package core provides a small, stable facade over licet's internal
// detection engine for external integrations. It deliberately re-exports a
// narrow API surface so package-metadata extractors and other tools can
// depend on a stable import path without exposing internal implementation
// packages.
//
// Example:
//
//	d := core.NewDetector(core.Options{})
//	findings := d.Detect("LICENSE", licenseText)
//	out, _ := core.MarshalFindings(findings)
package core
