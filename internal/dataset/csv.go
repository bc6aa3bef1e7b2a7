package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"paracli/internal/errors"
)

// ReadCSV loads a delimited text file into a table. The first record is
// the header row and defines the column names.
func ReadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("open %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // normalize ragged rows ourselves

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("read %s", path), err)
	}
	if len(records) == 0 {
		return nil, errors.NewStorageError(fmt.Sprintf("read %s", path),
			fmt.Errorf("file has no header row"))
	}

	return NewWithRows(stripBOM(records[0]), records[1:]), nil
}

// WriteCSV writes the table to path as comma-delimited text with a header
// row, overwriting any existing file. The write is atomic: data goes to a
// temporary file in the same directory which is renamed into place only
// after a successful flush, so a failed run never leaves partial output.
func WriteCSV(path string, t *Table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewStorageError(fmt.Sprintf("create directory %s", dir), err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("create temp file in %s", dir), err)
	}
	tmpPath := tmp.Name()

	if err := writeRecords(tmp, t); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewStorageError(fmt.Sprintf("write %s", path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.NewStorageError(fmt.Sprintf("close %s", tmpPath), err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return errors.NewStorageError(fmt.Sprintf("chmod %s", tmpPath), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.NewStorageError(fmt.Sprintf("rename %s to %s", tmpPath, path), err)
	}
	return nil
}

// writeRecords writes the header and all rows through a csv.Writer.
func writeRecords(file *os.File, t *Table) error {
	writer := csv.NewWriter(file)

	if err := writer.Write(t.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < t.RowCount(); i++ {
		if err := writer.Write(t.Row(i)); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// stripBOM removes a UTF-8 byte order mark from the first header cell.
// Spreadsheet tools routinely prepend one when saving CSV.
func stripBOM(header []string) []string {
	if len(header) > 0 && len(header[0]) >= 3 && header[0][:3] == "\xef\xbb\xbf" {
		header[0] = header[0][3:]
	}
	return header
}
