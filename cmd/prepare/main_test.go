package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadRawDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "games.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("type,country\nSummer,Italy\n"), 0644))

	xlsxPath := filepath.Join(dir, "games.xlsx")
	f := excelize.NewFile()
	header := []interface{}{"type", "country"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	row := []interface{}{"Winter", "Sweden"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))
	require.NoError(t, f.SaveAs(xlsxPath))
	require.NoError(t, f.Close())

	fromCSV, err := readRaw(csvPath, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Summer", "Italy"}, fromCSV.Row(0))

	fromExcel, err := readRaw(xlsxPath, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Winter", "Sweden"}, fromExcel.Row(0))
}

func TestReadRawMissingFile(t *testing.T) {
	_, err := readRaw(filepath.Join(t.TempDir(), "nope.csv"), 0)
	assert.Error(t, err)
}
