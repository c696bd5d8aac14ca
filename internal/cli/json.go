package cli

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/Veraticus/taxref/internal/model"
)

// SearchOutput is the JSON document printed by search --json.
type SearchOutput struct {
	Query       string                     `json:"query"`
	Income      []model.IncomeCategory     `json:"income"`
	Occupations []model.OccupationCategory `json:"occupations"`
}

// WriteJSON encodes v as indented JSON. CJK text is written as-is.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
