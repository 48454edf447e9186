package excel

import (
	"path/filepath"
	"testing"

	"homolo/domain/layer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteLayer_RoundTrip(t *testing.T) {
	rows := []layer.Row{
		{Parent: "10.01", Symbol: "10.01", Name: "Resultados", InputCost: ""},
		{Parent: "10.01", Symbol: "10.01.43", Name: "Detalle 1", InputCost: "100"},
		{Parent: "10.01", Symbol: "10.01.44", Name: "Detalle 2", InputCost: "n/a"},
	}
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, NewLayerWriter().WriteLayer(path, "Resultados", rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Resultados"}, f.GetSheetList(), "single renamed sheet")

	got, err := f.GetRows("Resultados")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"parent", "symbol", "name", "input_cost"}, got[0])
	// GetRows trims trailing empty cells, so check the parent row's prefix.
	assert.Equal(t, []string{"10.01", "10.01", "Resultados"}, got[1][:3])
	assert.Equal(t, []string{"10.01", "10.01.43", "Detalle 1", "100"}, got[2])
	// Non-numeric cost stays verbatim.
	assert.Equal(t, "n/a", got[3][3])

	// Numeric cost lands as a number: strings go to the shared string
	// table, numbers do not.
	costType, err := f.GetCellType("Resultados", "D3")
	require.NoError(t, err)
	nameType, err := f.GetCellType("Resultados", "C3")
	require.NoError(t, err)
	assert.NotEqual(t, nameType, costType)
}

func TestWriteLayer_EmptyRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, NewLayerWriter().WriteLayer(path, "Hoja", nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Hoja")
	require.NoError(t, err)
	require.Len(t, got, 1, "header row only")
}
