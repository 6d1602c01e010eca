package patterns

import (
	"regexp"
	"sort"
	"strings"

	"github.com/licet/licet/internal/types"
)

// synonyms maps normalized license strings to SPDX identifiers. Keys must
// already be in normalizeKey form: lowercase, commas and stray punctuation
// stripped, single spaces.
var synonyms = map[string]string{
	// MIT family
	"mit":             "MIT",
	"mit license":     "MIT",
	"mit licence":     "MIT",
	"the mit license": "MIT",
	"expat":           "MIT",
	"expat license":   "MIT",
	"x11":             "MIT",

	// Apache
	"apache-2.0":                  "Apache-2.0",
	"apache 2.0":                  "Apache-2.0",
	"apache 2":                    "Apache-2.0",
	"apache2":                     "Apache-2.0",
	"apache license":              "Apache-2.0",
	"apache license 2.0":          "Apache-2.0",
	"apache license version 2.0":  "Apache-2.0",
	"apache software license":     "Apache-2.0",
	"apache software license 2.0": "Apache-2.0",
	"asl 2.0":                     "Apache-2.0",

	// GPL v3
	"gpl-3.0":                              "GPL-3.0",
	"gpl-3.0-only":                         "GPL-3.0",
	"gpl-3.0-or-later":                     "GPL-3.0",
	"gpl3":                                 "GPL-3.0",
	"gplv3":                                "GPL-3.0",
	"gplv3+":                               "GPL-3.0",
	"gpl v3":                               "GPL-3.0",
	"gpl 3.0":                              "GPL-3.0",
	"gnu gpl v3":                           "GPL-3.0",
	"gnu general public license v3":        "GPL-3.0",
	"gnu general public license v3.0":      "GPL-3.0",
	"gnu general public license version 3": "GPL-3.0",

	// GPL v2
	"gpl-2.0":                              "GPL-2.0",
	"gpl-2.0-only":                         "GPL-2.0",
	"gpl-2.0-or-later":                     "GPL-2.0",
	"gpl2":                                 "GPL-2.0",
	"gplv2":                                "GPL-2.0",
	"gplv2+":                               "GPL-2.0",
	"gpl v2":                               "GPL-2.0",
	"gpl 2.0":                              "GPL-2.0",
	"gnu general public license v2":        "GPL-2.0",
	"gnu general public license v2.0":      "GPL-2.0",
	"gnu general public license version 2": "GPL-2.0",

	// LGPL
	"lgpl-3.0":                               "LGPL-3.0",
	"lgpl3":                                  "LGPL-3.0",
	"lgplv3":                                 "LGPL-3.0",
	"lgpl v3":                                "LGPL-3.0",
	"gnu lesser general public license v3":   "LGPL-3.0",
	"gnu lesser general public license v3.0": "LGPL-3.0",
	"lgpl-2.1":                               "LGPL-2.1",
	"lgplv2.1":                               "LGPL-2.1",
	"gnu lesser general public license v2.1": "LGPL-2.1",

	// AGPL
	"agpl-3.0":                               "AGPL-3.0",
	"agpl3":                                  "AGPL-3.0",
	"agplv3":                                 "AGPL-3.0",
	"affero gpl":                             "AGPL-3.0",
	"gnu affero general public license v3":   "AGPL-3.0",
	"gnu affero general public license v3.0": "AGPL-3.0",

	// BSD
	"bsd":                  "BSD-3-Clause",
	"bsd license":          "BSD-3-Clause",
	"bsd-3-clause":         "BSD-3-Clause",
	"bsd 3-clause":         "BSD-3-Clause",
	"bsd 3 clause":         "BSD-3-Clause",
	"bsd-3":                "BSD-3-Clause",
	"bsd3":                 "BSD-3-Clause",
	"new bsd":              "BSD-3-Clause",
	"new bsd license":      "BSD-3-Clause",
	"modified bsd":         "BSD-3-Clause",
	"modified bsd license": "BSD-3-Clause",
	"3-clause bsd":         "BSD-3-Clause",
	"3-clause bsd license": "BSD-3-Clause",
	"bsd-2-clause":         "BSD-2-Clause",
	"bsd 2-clause":         "BSD-2-Clause",
	"bsd 2 clause":         "BSD-2-Clause",
	"bsd-2":                "BSD-2-Clause",
	"bsd2":                 "BSD-2-Clause",
	"simplified bsd":       "BSD-2-Clause",
	"simplified bsd license": "BSD-2-Clause",
	"freebsd":              "BSD-2-Clause",
	"freebsd license":      "BSD-2-Clause",
	"2-clause bsd":         "BSD-2-Clause",
	"2-clause bsd license": "BSD-2-Clause",

	// ISC
	"isc":         "ISC",
	"isc license": "ISC",
	"isc licence": "ISC",

	// Eclipse
	"epl-2.0":                        "EPL-2.0",
	"epl 2.0":                        "EPL-2.0",
	"eclipse public license 2.0":     "EPL-2.0",
	"eclipse public license v2.0":    "EPL-2.0",
	"eclipse public license - v 2.0": "EPL-2.0",
	"epl-1.0":                        "EPL-1.0",
	"epl 1.0":                        "EPL-1.0",
	"eclipse public license 1.0":     "EPL-1.0",

	// Mozilla
	"mpl-2.0":                            "MPL-2.0",
	"mpl 2.0":                            "MPL-2.0",
	"mozilla public license 2.0":         "MPL-2.0",
	"mozilla public license version 2.0": "MPL-2.0",

	// Public domain
	"cc0-1.0":                              "CC0-1.0",
	"cc0":                                  "CC0-1.0",
	"cc0 1.0":                              "CC0-1.0",
	"cc0 1.0 universal":                    "CC0-1.0",
	"creative commons zero":                "CC0-1.0",
	"creative commons zero v1.0 universal": "CC0-1.0",
	"public domain":                        "CC0-1.0",
	"unlicense":                            "Unlicense",
	"unlicence":                            "Unlicense",
	"the unlicense":                        "Unlicense",

	// Misc permissive
	"zlib":                "Zlib",
	"zlib license":        "Zlib",
	"zlib libpng license": "Zlib",
	"wtfpl":               "WTFPL",

	// Commercial terms map to the proprietary sentinel.
	"proprietary":         types.Proprietary,
	"proprietary license": types.Proprietary,
	"commercial":          types.Proprietary,
	"commercial license":  types.Proprietary,
	"all rights reserved": types.Proprietary,
	"closed source":       types.Proprietary,
	"closed-source":       types.Proprietary,
}

var (
	reKeyJunk        = regexp.MustCompile(`[^a-z0-9.+\- ]+`)
	reKeySpace       = regexp.MustCompile(`\s+`)
	reSentencePeriod = regexp.MustCompile(`\.(\s|$)`)
)

// normalizeKey reduces a raw license string to the synonym-table key form.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reSentencePeriod.ReplaceAllString(s, " ")
	s = reKeyJunk.ReplaceAllString(s, " ")
	s = reKeySpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeID maps a raw license string to an SPDX identifier, or "" when
// the string is not recognized. Unknown input is never an error.
func NormalizeID(s string) string {
	key := normalizeKey(s)
	if key == "" {
		return ""
	}
	if id, ok := synonyms[key]; ok {
		return id
	}
	for _, prefix := range []string{"the ", "licensed under the ", "licensed under ", "released under "} {
		if trimmed, ok := strings.CutPrefix(key, prefix); ok {
			if id, found := synonyms[trimmed]; found {
				return id
			}
		}
	}
	if trimmed, ok := strings.CutSuffix(key, " license"); ok {
		if id, found := synonyms[trimmed]; found {
			return id
		}
	}
	return ""
}

// sortedKeys holds synonym keys longest first so prose scanning prefers the
// most specific match ("new bsd license" before "bsd").
var sortedKeys = func() []string {
	keys := make([]string, 0, len(synonyms))
	for k := range synonyms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// scanProse finds license-name mentions inside free text. Matched regions
// are masked so a specific key consumes its words before shorter keys run.
// Returns distinct SPDX identifiers in match order.
func scanProse(text string) []string {
	prose := " " + normalizeKey(text) + " "
	var ids []string
	seen := make(map[string]bool)
	for _, key := range sortedKeys {
		needle := " " + key + " "
		for {
			idx := strings.Index(prose, needle)
			if idx < 0 {
				break
			}
			// Mask the matched span, keeping the surrounding boundaries.
			prose = prose[:idx+1] + strings.Repeat(" ", len(key)) + prose[idx+1+len(key):]
			id := synonyms[key]
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}
