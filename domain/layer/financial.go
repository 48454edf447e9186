package layer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"homolo/domain/table"
)

// FinancialOptions parameterizes BuildFinancial. Zero values are not useful
// defaults; callers normally start from DefaultFinancialOptions.
type FinancialOptions struct {
	Parent           string // parent symbol, e.g. "10.01"
	ParentName       string // display name for the header row
	IncludeParentRow bool   // emit the header row first
	PadWidth         int    // zero-pad numeric codes to this width
}

// DefaultFinancialOptions mirrors the CLI defaults.
func DefaultFinancialOptions(parent string) FinancialOptions {
	return FinancialOptions{
		Parent:           parent,
		ParentName:       "Datos que fluyen",
		IncludeParentRow: true,
		PadWidth:         2,
	}
}

// BuildFinancial produces parent+child rows for one financial layer from a
// table normalized to code/description/value. The value column is passed
// through untouched; it may be numeric or text.
func BuildFinancial(t *table.Table, opts FinancialOptions) []Row {
	out := make([]Row, 0, t.Len()+1)
	if opts.IncludeParentRow {
		out = append(out, Row{
			Parent: opts.Parent,
			Symbol: opts.Parent,
			Name:   opts.ParentName,
		})
	}
	for _, r := range t.Rows {
		code := padCode(r.Get("code"), opts.PadWidth)
		out = append(out, Row{
			Parent:    opts.Parent,
			Symbol:    opts.Parent + "." + code,
			Name:      strings.TrimSpace(r.Get("description")),
			InputCost: r.Get("value"),
		})
	}
	return out
}

// padCode formats a numeric code as an integer left-padded with zeros to
// width. Padding never truncates a longer numeral. Non-numeric codes are
// returned trimmed and verbatim: try-numeric, fall back to passthrough.
// Values outside the int64 range fall back too; converting them is undefined.
func padCode(code string, width int) string {
	s := strings.TrimSpace(code)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return s
	}
	return fmt.Sprintf("%0*d", width, int64(f))
}
