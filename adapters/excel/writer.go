package excel

import (
	"fmt"
	"strconv"

	"homolo/domain/layer"
	"homolo/internal"

	"github.com/xuri/excelize/v2"
)

// LayerWriter serializes layer rows to an xlsx workbook with a single sheet.
type LayerWriter struct {
	log *internal.Logger
}

// NewLayerWriter creates a new layer writer.
func NewLayerWriter() *LayerWriter {
	return &LayerWriter{log: internal.DefaultLogger}
}

// WriteLayer writes the rows to path under sheetName, columns in the fixed
// parent/symbol/name/input_cost order. A numeric-looking input_cost is
// written as a number so spreadsheet consumers can aggregate it; anything
// else is written verbatim.
func (w *LayerWriter) WriteLayer(path, sheetName string, rows []layer.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with one sheet named Sheet1; rename instead of
	// creating a second one.
	if sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", sheetName, err)
		}
	}

	for i, h := range layer.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for r, row := range rows {
		values := []string{row.Parent, row.Symbol, row.Name, row.InputCost}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			var err error
			if c == 3 && v != "" {
				if n, perr := strconv.ParseFloat(v, 64); perr == nil {
					err = f.SetCellValue(sheetName, cell, n)
				} else {
					err = f.SetCellValue(sheetName, cell, v)
				}
			} else {
				err = f.SetCellValue(sheetName, cell, v)
			}
			if err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	w.log.Info("[LayerWriter] wrote %d rows to %s (sheet %q)", len(rows), path, sheetName)
	return nil
}
