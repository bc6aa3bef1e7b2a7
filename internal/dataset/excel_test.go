package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "paracli/internal/errors"
)

// writeWorkbook builds a two-sheet test workbook and returns its path.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "games"))
	rows := [][]interface{}{
		{"type", "country", "participants"},
		{"Summer", "Italy", 400},
		{"Winter", "Sweden", nil},
		{}, // trailing empty row
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("games", cell, &row))
	}

	_, err := f.NewSheet("hosts")
	require.NoError(t, err)
	header := []interface{}{"host", "country"}
	require.NoError(t, f.SetSheetRow("hosts", "A1", &header))

	path := filepath.Join(t.TempDir(), "games.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadExcel(t *testing.T) {
	path := writeWorkbook(t)

	tbl, err := ReadExcel(path, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"type", "country", "participants"}, tbl.Columns())
	require.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, []string{"Summer", "Italy", "400"}, tbl.Row(0))
	assert.Equal(t, []string{"Winter", "Sweden", ""}, tbl.Row(1))
}

func TestReadExcelSecondSheet(t *testing.T) {
	path := writeWorkbook(t)

	tbl, err := ReadExcel(path, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "country"}, tbl.Columns())
	assert.Equal(t, 0, tbl.RowCount())
}

func TestReadExcelSheetOutOfRange(t *testing.T) {
	path := writeWorkbook(t)

	_, err := ReadExcel(path, 5)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}

func TestReadExcelMissingFile(t *testing.T) {
	_, err := ReadExcel(filepath.Join(t.TempDir(), "nope.xlsx"), 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
