package report

import (
	"encoding/json"
	"io"

	"github.com/licet/licet/internal/types"
)

// Envelope is the JSON output shape.
type Envelope struct {
	Source   string          `json:"source,omitempty"`
	Licenses []types.Finding `json:"licenses"`
}

// WriteJSON emits the findings as indented JSON. An empty result is a
// valid, empty licenses array rather than null.
func WriteJSON(w io.Writer, source string, findings []types.Finding) error {
	if findings == nil {
		findings = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Envelope{Source: source, Licenses: findings})
}
