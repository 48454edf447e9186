package ports

import (
	"homolo/domain/layer"
	"homolo/domain/table"
)

// TableReader yields a row set from a file path. The sheet selector is only
// meaningful for workbook formats; "" means the first sheet. Delimited-text
// sources ignore it.
type TableReader interface {
	ReadTable(path, sheet string) (*table.Table, error)
}

// LayerWriter serializes an ordered layer row sequence to a spreadsheet
// sheet, columns in the fixed order parent, symbol, name, input_cost.
type LayerWriter interface {
	WriteLayer(path, sheetName string, rows []layer.Row) error
}
