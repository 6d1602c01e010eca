package types

import "sort"

// Dedupe collapses findings that share an SPDX identifier, keeping the
// highest-confidence one regardless of which method produced it, and
// returns the result sorted by confidence descending (ties broken by id
// so output is deterministic).
func Dedupe(in []Finding) []Finding {
	if len(in) == 0 {
		return nil
	}
	best := make(map[string]Finding, len(in))
	for _, f := range in {
		cur, ok := best[f.SPDXID]
		if !ok || f.Confidence > cur.Confidence {
			best[f.SPDXID] = f
		}
	}
	out := make([]Finding, 0, len(best))
	for _, f := range best {
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].SPDXID < out[j].SPDXID
	})
	return out
}
