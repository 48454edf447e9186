package schema

import (
	"regexp"
	"strings"

	"homolo/domain/core"
	"homolo/domain/table"
)

// Schema describes one table kind: the canonical columns it must carry, the
// columns it may carry, and the alias table that maps raw header spellings to
// canonical names. Raw headers are lowercased and whitespace-collapsed before
// the alias lookup; headers with no alias entry keep their normalized name.
type Schema struct {
	Name     string            // table kind, used in error messages
	Required []string          // canonical columns, in output order
	Optional []string          // pass-through columns kept when present
	Aliases  map[string]string // normalized raw header -> canonical name
}

var spaceRun = regexp.MustCompile(`\s+`)

// NormalizeHeader lowercases, trims and collapses inner whitespace so that
// "Nombre  Rol " and "nombre rol" resolve to the same alias entry.
func NormalizeHeader(h string) string {
	return spaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(h)), " ")
}

// Normalize renames the table's columns to the canonical schema and restricts
// it to the required columns plus any optional columns that are present, in
// schema order. It is a pure transform: the input table is not modified.
//
// Returns *core.SchemaError when a required column cannot be resolved.
func (s Schema) Normalize(t *table.Table) (*table.Table, error) {
	// Resolve each raw header to its canonical name.
	rename := make(map[string]string, len(t.Headers))
	present := make([]string, 0, len(t.Headers))
	seen := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		canon := NormalizeHeader(h)
		if alias, ok := s.Aliases[canon]; ok {
			canon = alias
		}
		rename[h] = canon
		if !seen[canon] {
			present = append(present, canon)
			seen[canon] = true
		}
	}

	var missing []string
	for _, req := range s.Required {
		if !seen[req] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, core.NewSchemaError(s.Name, missing, present)
	}

	keep := append([]string{}, s.Required...)
	for _, opt := range s.Optional {
		if seen[opt] {
			keep = append(keep, opt)
		}
	}

	out := table.New(keep...)
	for _, row := range t.Rows {
		canonRow := make(table.Row, len(keep))
		for raw, v := range row {
			canonRow[rename[raw]] = v
		}
		projected := make(table.Row, len(keep))
		for _, col := range keep {
			projected[col] = canonRow[col]
		}
		out.Append(projected)
	}
	return out, nil
}
