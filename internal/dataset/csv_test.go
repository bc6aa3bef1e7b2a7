package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "paracli/internal/errors"
)

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.csv")
	content := "type,country,participants\nSummer,Italy,400\nWinter,Sweden,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := ReadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"type", "country", "participants"}, tbl.Columns())
	require.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, []string{"Summer", "Italy", "400"}, tbl.Row(0))
	assert.Equal(t, []string{"Winter", "Sweden", ""}, tbl.Row(1))
}

func TestReadCSVStripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	content := "\xef\xbb\xbfCode,Name\nGBR,Great Britain\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Code", "Name"}, tbl.Columns())
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}

func TestReadCSVEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := ReadCSV(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "prepared.csv")
	tbl := NewWithRows(
		[]string{"type", "country"},
		[][]string{{"summer", "Italy"}, {"winter", "Sweden"}},
	)

	require.NoError(t, WriteCSV(path, tbl))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "type,country\nsummer,Italy\nwinter,Sweden\n", string(content))
}

func TestWriteCSVOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prepared.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0644))

	tbl := NewWithRows([]string{"a"}, [][]string{{"1"}})
	require.NoError(t, WriteCSV(path, tbl))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n1\n", string(content))
}

func TestWriteCSVLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prepared.csv")
	tbl := NewWithRows([]string{"a"}, [][]string{{"1"}})

	require.NoError(t, WriteCSV(path, tbl))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prepared.csv", entries[0].Name())
}

func TestWriteReadRoundTripIsByteStable(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	tbl := NewWithRows(
		[]string{"type", "country", "start"},
		[][]string{{"summer", "Italy", "1960-09-18"}},
	)

	require.NoError(t, WriteCSV(first, tbl))
	reread, err := ReadCSV(first)
	require.NoError(t, err)
	require.NoError(t, WriteCSV(second, reread))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
