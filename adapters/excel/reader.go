package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"homolo/domain/core"
	"homolo/domain/table"
	"homolo/internal"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and delimited-text files into tables.
type DataReader struct {
	log *internal.Logger
}

// NewDataReader creates a new data reader.
func NewDataReader() *DataReader {
	return &DataReader{log: internal.DefaultLogger}
}

// ReadTable reads the file at path into a table. The format is picked by
// extension: workbook formats go through excelize (sheet selects a sheet by
// name, "" means the first one), .csv/.txt through the CSV reader. Any other
// extension fails with core.ErrUnsupportedFormat.
func (r *DataReader) ReadTable(path, sheet string) (*table.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("input file not found: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm", ".xls":
		return r.readWorkbook(path, sheet)
	case ".csv", ".txt":
		return r.readDelimited(path)
	default:
		return nil, core.NewUnsupportedFormatError(ext)
	}
}

func (r *DataReader) readWorkbook(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets: %s", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	r.log.Debug("[DataReader] workbook %s sheet %q read (%d rows)", path, sheet, len(rows))

	return r.processRows(rows)
}

// readDelimited parses comma-separated text. Fallback precondition: when the
// comma parse errors, or yields a single column whose header still contains a
// semicolon, the file is re-parsed as semicolon-separated.
func (r *DataReader) readDelimited(path string) (*table.Table, error) {
	rows, err := readCSVRecords(path, ',')
	if err != nil || singleSemicolonColumn(rows) {
		var ferr error
		rows, ferr = readCSVRecords(path, ';')
		if ferr != nil {
			if err != nil {
				return nil, fmt.Errorf("failed to read delimited file: %w", err)
			}
			return nil, fmt.Errorf("failed to read delimited file: %w", ferr)
		}
		r.log.Debug("[DataReader] %s parsed with semicolon fallback", path)
	}

	return r.processRows(rows)
}

func readCSVRecords(path string, comma rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func singleSemicolonColumn(rows [][]string) bool {
	return len(rows) > 0 && len(rows[0]) == 1 && strings.Contains(rows[0][0], ";")
}

// processRows converts raw string rows into a table: first row is the
// header, every cell trimmed.
func (r *DataReader) processRows(rows [][]string) (*table.Table, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one data row", core.ErrEmptyTable)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	t := table.New(headers...)
	for _, raw := range rows[1:] {
		row := make(table.Row, len(headers))
		for j, cell := range raw {
			if j < len(headers) {
				row[headers[j]] = cell
			}
		}
		t.Append(row)
	}

	r.log.Debug("[DataReader] table processed (%d columns, %d rows)", len(headers), t.Len())
	return t, nil
}
