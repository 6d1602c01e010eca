package patterns

import (
	"testing"

	"github.com/licet/licet/internal/corpus"
	"github.com/licet/licet/internal/types"
)

func newTestDetector() *Detector {
	return New(corpus.NewBuiltin())
}

func TestDetectTextVariants(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		name     string
		text     string
		filename string
		wantID   string
	}{
		{"bare mit", "MIT", "", "MIT"},
		{"mit license", "MIT License", "", "MIT"},
		{"the mit license", "The MIT License (MIT)", "", "MIT"},
		{"bare apache id", "Apache-2.0", "", "Apache-2.0"},
		{"apache long form", "Apache License 2.0", "", "Apache-2.0"},
		{"gplv3", "GPLv3", "", "GPL-3.0"},
		{"gpl or later", "GPL-3.0-or-later", "", "GPL-3.0"},
		{"bare bsd", "BSD", "", "BSD-3-Clause"},
		{"new bsd", "New BSD License", "", "BSD-3-Clause"},
		{"simplified bsd", "Simplified BSD License", "", "BSD-2-Clause"},
		{"spdx tag", "// SPDX-License-Identifier: MIT", "main.go", "MIT"},
		{"spdx expression", "SPDX-License-Identifier: (MIT OR Apache-2.0)", "", "MIT"},
		{"json field", `{"name": "pkg", "license": "MIT"}`, "package.json", "MIT"},
		{"yaml field", "name: pkg\nlicense: Apache-2.0\n", "galaxy.yml", "Apache-2.0"},
		{"pom xml", "<licenses><license><name>Apache License, Version 2.0</name></license></licenses>", "pom.xml", "Apache-2.0"},
		{"nuget expression", `<license type="expression">MIT</license>`, "pkg.nuspec", "MIT"},
		{"trove classifier", "Classifier: License :: OSI Approved :: MIT License", "PKG-INFO", "MIT"},
		{"classifier no osi", "License :: Public Domain", "PKG-INFO", "CC0-1.0"},
		{"prose mention", "This project is licensed under the Apache License 2.0.", "README.md", "Apache-2.0"},
		{"proprietary prose", "This software is proprietary and confidential.", "", types.Proprietary},
		{"public domain prose", "This work is released into the public domain.", "", "CC0-1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := d.DetectText(tt.text, tt.filename)
			if f == nil {
				t.Fatalf("DetectText(%q) = nil, want %s", tt.text, tt.wantID)
			}
			if f.SPDXID != tt.wantID {
				t.Errorf("DetectText(%q) = %s, want %s", tt.text, f.SPDXID, tt.wantID)
			}
		})
	}
}

func TestDetectTextNoMatch(t *testing.T) {
	d := newTestDetector()
	for _, text := range []string{
		"",
		"   \n\t ",
		"just a plain readme paragraph about the weather",
		"version: 1.2.3",
	} {
		if f := d.DetectText(text, ""); f != nil {
			t.Errorf("DetectText(%q) = %+v, want nil", text, f)
		}
	}
}

func TestDetectTextConfidence(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		name       string
		text       string
		filename   string
		confidence float64
		method     types.Method
	}{
		{"validated tag", "SPDX-License-Identifier: MIT", "", 1.0, types.MethodSPDXIdentifier},
		{"unknown tag", "SPDX-License-Identifier: SomethingMade-1.0", "", 0.85, types.MethodSPDXIdentifier},
		{"field", `"license": "MIT"`, "", 0.9, types.MethodRegexField},
		{"bare token", "MIT", "", 0.7, types.MethodRegexPattern},
		{"bare token in license file", "MIT", "LICENSE", 0.9, types.MethodRegexPattern},
		{"prose", "released under the MIT license for everyone", "", 0.6, types.MethodRegexPattern},
		{"prose in license file", "released under the MIT license for everyone", "LICENSE.txt", 0.8, types.MethodRegexPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := d.DetectText(tt.text, tt.filename)
			if f == nil {
				t.Fatalf("DetectText(%q) = nil", tt.text)
			}
			if f.Confidence != tt.confidence {
				t.Errorf("confidence = %v, want %v", f.Confidence, tt.confidence)
			}
			if f.Method != tt.method {
				t.Errorf("method = %v, want %v", f.Method, tt.method)
			}
		})
	}
}

func TestDetectTextUsesCorpusNames(t *testing.T) {
	d := newTestDetector()
	f := d.DetectText("MIT", "")
	if f == nil || f.Name != "MIT License" {
		t.Fatalf("expected corpus display name, got %+v", f)
	}
}

func TestDetectMetadata(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		name   string
		fields map[string]any
		wantID string
	}{
		{"string field", map[string]any{"license": "MIT"}, "MIT"},
		{"expression field", map[string]any{"license_expression": "Apache-2.0"}, "Apache-2.0"},
		{"list first wins", map[string]any{"licenses": []any{"GPLv3", "MIT"}}, "GPL-3.0"},
		{"string list", map[string]any{"licenses": []string{"BSD-3-Clause"}}, "BSD-3-Clause"},
		{"object type", map[string]any{"license": map[string]any{"type": "MIT", "url": "ignored"}}, "MIT"},
		{"object name only", map[string]any{"license": map[string]any{"name": "Apache License 2.0"}}, "Apache-2.0"},
		{"string map", map[string]any{"license": map[string]string{"type": "ISC"}}, "ISC"},
		{"list of objects", map[string]any{"licenses": []any{map[string]any{"type": "MPL-2.0"}}}, "MPL-2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := d.DetectMetadata(tt.fields)
			if f == nil {
				t.Fatalf("DetectMetadata(%v) = nil, want %s", tt.fields, tt.wantID)
			}
			if f.SPDXID != tt.wantID {
				t.Errorf("got %s, want %s", f.SPDXID, tt.wantID)
			}
			if f.Method != types.MethodRegexField {
				t.Errorf("method = %v, want %v", f.Method, types.MethodRegexField)
			}
		})
	}
}

func TestDetectMetadataNoMatch(t *testing.T) {
	d := newTestDetector()
	for name, fields := range map[string]map[string]any{
		"missing key":   {"version": "1.0"},
		"empty string":  {"license": ""},
		"unknown value": {"license": "my own special terms"},
		"empty list":    {"licenses": []any{}},
		"bad shape":     {"license": 42},
	} {
		if f := d.DetectMetadata(fields); f != nil {
			t.Errorf("%s: expected nil, got %+v", name, f)
		}
	}
}

func TestDetectMultiple(t *testing.T) {
	d := newTestDetector()

	text := "Dual licensed under MIT and Apache-2.0, pick whichever suits you."
	out := d.DetectMultiple(text)
	if len(out) != 2 {
		t.Fatalf("expected 2 findings, got %d: %+v", len(out), out)
	}
	ids := map[string]bool{}
	for _, f := range out {
		ids[f.SPDXID] = true
	}
	if !ids["MIT"] || !ids["Apache-2.0"] {
		t.Errorf("expected MIT and Apache-2.0, got %+v", out)
	}
}

func TestDetectMultipleTags(t *testing.T) {
	d := newTestDetector()

	text := "SPDX-License-Identifier: MIT\nSPDX-License-Identifier: GPL-2.0\n"
	out := d.DetectMultiple(text)
	if len(out) != 2 {
		t.Fatalf("expected 2 findings, got %d: %+v", len(out), out)
	}
	for _, f := range out {
		if f.Confidence != 1.0 {
			t.Errorf("%s: validated tags carry full confidence, got %v", f.SPDXID, f.Confidence)
		}
	}
}

func TestDetectMultipleDedupes(t *testing.T) {
	d := newTestDetector()

	// The same license via a tag and in prose must collapse to one finding
	// at the higher confidence.
	text := "SPDX-License-Identifier: MIT\n\nDistributed under the MIT license.\n"
	out := d.DetectMultiple(text)
	if len(out) != 1 {
		t.Fatalf("expected 1 finding, got %d: %+v", len(out), out)
	}
	if out[0].SPDXID != "MIT" || out[0].Confidence != 1.0 {
		t.Errorf("got %+v, want MIT at 1.0", out[0])
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MIT", "MIT"},
		{"mit", "MIT"},
		{" MIT License ", "MIT"},
		{"Expat", "MIT"},
		{"Apache 2.0", "Apache-2.0"},
		{"Apache Software License", "Apache-2.0"},
		{"ASL 2.0", "Apache-2.0"},
		{"GPL-3.0-only", "GPL-3.0"},
		{"GPLv3+", "GPL-3.0"},
		{"GNU General Public License v2.0", "GPL-2.0"},
		{"LGPLv2.1", "LGPL-2.1"},
		{"AGPLv3", "AGPL-3.0"},
		{"New BSD License", "BSD-3-Clause"},
		{"FreeBSD", "BSD-2-Clause"},
		{"the ISC license", "ISC"},
		{"Eclipse Public License 2.0", "EPL-2.0"},
		{"Mozilla Public License 2.0", "MPL-2.0"},
		{"CC0 1.0 Universal", "CC0-1.0"},
		{"Public Domain", "CC0-1.0"},
		{"The Unlicense", "Unlicense"},
		{"zlib/libpng License", "Zlib"},
		{"WTFPL", "WTFPL"},
		{"Proprietary", types.Proprietary},
		{"All Rights Reserved", types.Proprietary},
		{"released under the MIT license", "MIT"},
		{"", ""},
		{"some totally unknown terms", ""},
	}
	for _, tt := range tests {
		if got := NormalizeID(tt.in); got != tt.want {
			t.Errorf("NormalizeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsLicenseFilename(t *testing.T) {
	yes := []string{
		"LICENSE", "LICENSE.md", "LICENSE.txt", "license",
		"LICENCE", "COPYING", "COPYING.LESSER", "NOTICE",
		"NOTICE.txt", "PATENTS", "legal", "path/to/LICENSE",
		"nested\\dir\\COPYING.txt",
	}
	for _, name := range yes {
		if !IsLicenseFilename(name) {
			t.Errorf("IsLicenseFilename(%q) = false, want true", name)
		}
	}
	no := []string{
		"README.md", "main.go", "license_check.py", "licenses.go", "",
	}
	for _, name := range no {
		if IsLicenseFilename(name) {
			t.Errorf("IsLicenseFilename(%q) = true, want false", name)
		}
	}
}

func TestParseField(t *testing.T) {
	if _, ok := ParseField(nil); ok {
		t.Error("nil should not parse")
	}
	fv, ok := ParseField([]any{"", "MIT"})
	if !ok {
		t.Fatal("list with one valid entry should parse")
	}
	if fv.raw() != "MIT" {
		t.Errorf("raw() = %q, want MIT", fv.raw())
	}
	fv, ok = ParseField(map[string]any{"type": "MIT", "name": "ignored"})
	if !ok || fv.raw() != "MIT" {
		t.Errorf("object type should win, got %v %v", fv, ok)
	}
}
