package detect

import "github.com/licet/licet/internal/types"

// deniedMethods lists identifier/method combinations that are dropped
// outright, regardless of score. The Pixar license is a lightly edited
// Apache-2.0 and the coarse similarity methods flag it for nearly every
// Apache-licensed package, so those hits are never trustworthy. This is a
// hard policy rule, not a scoring adjustment.
var deniedMethods = map[string][]types.Method{
	"Pixar": {types.MethodDiceBigram, types.MethodDiceUnigram, types.MethodFullText},
}

func suppressed(f types.Finding) bool {
	for _, m := range deniedMethods[f.SPDXID] {
		if f.Method == m {
			return true
		}
	}
	return false
}
