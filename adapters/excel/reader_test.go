package excel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"homolo/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadTable_CommaCSV(t *testing.T) {
	path := writeTempFile(t, "in.csv", "code,description,value\n43, Detalle 1 ,100\n44,Detalle 2,200\n")

	tbl, err := NewDataReader().ReadTable(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"code", "description", "value"}, tbl.Headers)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Detalle 1", tbl.Rows[0].Get("description"), "cells are trimmed")
	assert.Equal(t, "200", tbl.Rows[1].Get("value"))
}

func TestReadTable_SemicolonFallback(t *testing.T) {
	path := writeTempFile(t, "in.csv", "code;description;value\n43;Detalle 1;100\n")

	tbl, err := NewDataReader().ReadTable(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"code", "description", "value"}, tbl.Headers)
	assert.Equal(t, "43", tbl.Rows[0].Get("code"))
}

func TestReadTable_TxtExtension(t *testing.T) {
	path := writeTempFile(t, "in.txt", "a,b\n1,2\n")

	tbl, err := NewDataReader().ReadTable(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Headers)
}

func TestReadTable_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "in.parquet", "whatever")

	_, err := NewDataReader().ReadTable(path, "")
	assert.True(t, errors.Is(err, core.ErrUnsupportedFormat), "got %v", err)
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := NewDataReader().ReadTable(filepath.Join(t.TempDir(), "nope.csv"), "")
	assert.Error(t, err)
}

func TestReadTable_HeaderOnly(t *testing.T) {
	path := writeTempFile(t, "in.csv", "code,description,value\n")

	_, err := NewDataReader().ReadTable(path, "")
	assert.True(t, errors.Is(err, core.ErrEmptyTable), "got %v", err)
}

func writeTestWorkbook(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range rows {
			for c, v := range row {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, f.SetCellValue(name, cell, v))
			}
		}
	}

	path := filepath.Join(t.TempDir(), "in.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadTable_WorkbookNamedSheet(t *testing.T) {
	path := writeTestWorkbook(t, map[string][][]string{
		"Roles": {{"code", "role"}, {"1", "Gerente"}},
	})

	tbl, err := NewDataReader().ReadTable(path, "Roles")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "role"}, tbl.Headers)
	assert.Equal(t, "Gerente", tbl.Rows[0].Get("role"))
}

func TestReadTable_WorkbookFirstSheetByDefault(t *testing.T) {
	path := writeTestWorkbook(t, map[string][][]string{
		"Datos": {{"code", "description", "value"}, {"7", "x", "1"}},
	})

	tbl, err := NewDataReader().ReadTable(path, "")
	require.NoError(t, err)
	assert.Equal(t, "7", tbl.Rows[0].Get("code"))
}

func TestReadTable_WorkbookUnknownSheet(t *testing.T) {
	path := writeTestWorkbook(t, map[string][][]string{
		"Datos": {{"a"}, {"1"}},
	})

	_, err := NewDataReader().ReadTable(path, "NoExiste")
	assert.Error(t, err)
}
