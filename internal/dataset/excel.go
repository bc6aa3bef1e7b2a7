package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"paracli/internal/errors"
)

// ReadExcel loads one worksheet of an .xlsx workbook into a table. The
// sheet is addressed by zero-based index; its first row is the header.
// Fully empty trailing rows, which spreadsheets accumulate, are skipped.
func ReadExcel(path string, sheet int) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("open %s", path), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheet < 0 || sheet >= len(sheets) {
		return nil, errors.NewStorageError(fmt.Sprintf("read %s", path),
			fmt.Errorf("worksheet index %d out of range, workbook has %d sheets", sheet, len(sheets)))
	}

	rows, err := f.GetRows(sheets[sheet])
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("read sheet %q", sheets[sheet]), err)
	}
	if len(rows) == 0 {
		return nil, errors.NewStorageError(fmt.Sprintf("read sheet %q", sheets[sheet]),
			fmt.Errorf("sheet has no header row"))
	}

	t := New(rows[0])
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		t.AppendRow(row)
	}
	return t, nil
}

// isEmptyRow reports whether every cell is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
