// Package layer turns normalized tables into hierarchical layer rows.
//
// A layer is one branch of an accounting or org structure. Every row carries
// the symbol of its containing node (parent), its own fully-qualified dotted
// symbol, a display name and an input cost. Header rows for non-leaf nodes
// leave the cost empty.
package layer

// Row is one output record. Output order is significant: the sequence is the
// final artifact, not a set.
type Row struct {
	Parent    string `json:"parent"`
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	InputCost string `json:"input_cost"`
}

// Columns is the fixed output column order for every emitted layer.
var Columns = []string{"parent", "symbol", "name", "input_cost"}
