package stats

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"paracli/internal/dataset"
	"paracli/internal/errors"
	"paracli/pkg/contracts/domain"
)

// dateLayouts are the formats a column must parse as to count as dates
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// Describer generates descriptive reports over a table: shape, inferred
// column kinds, preview rows, and numeric summaries.
type Describer struct {
	logger      *slog.Logger
	previewRows int
}

// DescriberConfig holds configuration options for the Describer.
type DescriberConfig struct {
	PreviewRows int // rows shown in the head and tail previews
}

// NewDescriber creates a describer with the given configuration.
func NewDescriber(logger *slog.Logger, config DescriberConfig) *Describer {
	if logger == nil {
		logger = slog.Default()
	}
	if config.PreviewRows <= 0 {
		config.PreviewRows = 5
	}
	return &Describer{logger: logger, previewRows: config.PreviewRows}
}

// ColumnKind is the inferred content kind of a column.
type ColumnKind string

const (
	KindInteger ColumnKind = "integer"
	KindDate    ColumnKind = "date"
	KindText    ColumnKind = "text"
)

// NumericSummary describes one integer column.
type NumericSummary struct {
	Count int     `json:"count"`
	Min   int64   `json:"min"`
	Max   int64   `json:"max"`
	Mean  float64 `json:"mean"`
}

// Description is the full descriptive profile of a table.
type Description struct {
	RowCount    int                       `json:"row_count"`
	ColumnCount int                       `json:"column_count"`
	Columns     []string                  `json:"columns"`
	Kinds       map[string]ColumnKind     `json:"kinds"`
	Head        [][]string                `json:"head"`
	Tail        [][]string                `json:"tail"`
	Numeric     map[string]NumericSummary `json:"numeric"`
}

// Describe profiles the table: shape, column kinds, head and tail rows,
// and min/max/mean for every integer column.
func (d *Describer) Describe(ctx context.Context, t *dataset.Table) *Description {
	desc := &Description{
		RowCount:    t.RowCount(),
		ColumnCount: t.ColumnCount(),
		Columns:     t.Columns(),
		Kinds:       make(map[string]ColumnKind, t.ColumnCount()),
		Numeric:     make(map[string]NumericSummary),
	}

	for i := 0; i < t.RowCount() && i < d.previewRows; i++ {
		desc.Head = append(desc.Head, t.Row(i))
	}
	for i := max(0, t.RowCount()-d.previewRows); i < t.RowCount(); i++ {
		desc.Tail = append(desc.Tail, t.Row(i))
	}

	for _, col := range desc.Columns {
		values, _ := t.Column(col)
		kind := inferKind(values)
		desc.Kinds[col] = kind
		if kind == KindInteger {
			if summary, ok := summarizeInts(values); ok {
				desc.Numeric[col] = summary
			}
		}
	}

	d.logger.InfoContext(ctx, "described table",
		slog.Int("rows", desc.RowCount),
		slog.Int("columns", desc.ColumnCount),
		slog.Int("numeric_columns", len(desc.Numeric)))
	return desc
}

// QualityReport lists where missing values live in a table.
type QualityReport struct {
	RowsWithMissing []int          `json:"rows_with_missing"`
	MissingByColumn map[string]int `json:"missing_by_column"`
}

// QualityCheck finds every row containing a missing cell and counts
// missing cells per column.
func (d *Describer) QualityCheck(ctx context.Context, t *dataset.Table) QualityReport {
	report := QualityReport{MissingByColumn: make(map[string]int)}
	columns := t.Columns()

	for i := 0; i < t.RowCount(); i++ {
		row := t.Row(i)
		rowHasMissing := false
		for j, cell := range row {
			if strings.TrimSpace(cell) == "" {
				report.MissingByColumn[columns[j]]++
				rowHasMissing = true
			}
		}
		if rowHasMissing {
			report.RowsWithMissing = append(report.RowsWithMissing, i)
		}
	}

	d.logger.InfoContext(ctx, "quality check complete",
		slog.Int("rows_with_missing", len(report.RowsWithMissing)))
	return report
}

// ValueCount is one distinct value of a categorical column and its frequency.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts profiles a categorical column: distinct values with their
// frequencies, most frequent first, ties broken by value.
func (d *Describer) ValueCounts(t *dataset.Table, column string) ([]ValueCount, error) {
	values, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}

	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out, nil
}

// WriteReport renders the description as a text report at path.
func WriteReport(path string, desc *Description) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError(fmt.Sprintf("create directory for %s", path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("create %s", path), err)
	}
	defer file.Close()

	if err := renderReport(file, desc); err != nil {
		return errors.NewStorageError(fmt.Sprintf("write %s", path), err)
	}
	return nil
}

// renderReport writes the human-readable report body.
func renderReport(w io.Writer, desc *Description) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Shape: %d rows x %d columns\n\n", desc.RowCount, desc.ColumnCount)

	b.WriteString("Columns:\n")
	for _, col := range desc.Columns {
		fmt.Fprintf(&b, "  %-24s %s\n", col, desc.Kinds[col])
	}
	b.WriteString("\n")

	writePreview(&b, "Head", desc.Columns, desc.Head)
	writePreview(&b, "Tail", desc.Columns, desc.Tail)

	if len(desc.Numeric) > 0 {
		b.WriteString("Numeric summaries:\n")
		cols := make([]string, 0, len(desc.Numeric))
		for col := range desc.Numeric {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			s := desc.Numeric[col]
			fmt.Fprintf(&b, "  %-24s count=%d min=%d max=%d mean=%.2f\n",
				col, s.Count, s.Min, s.Max, s.Mean)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writePreview renders a head or tail block as delimited lines.
func writePreview(b *strings.Builder, title string, columns []string, rows [][]string) {
	fmt.Fprintf(b, "%s (%d rows):\n", title, len(rows))
	fmt.Fprintf(b, "  %s\n", strings.Join(columns, " | "))
	for _, row := range rows {
		fmt.Fprintf(b, "  %s\n", strings.Join(row, " | "))
	}
	b.WriteString("\n")
}

// inferKind decides what a column holds from its non-missing values:
// all integers, all dates, or free text. Columns with no values at all
// are text.
func inferKind(values []string) ColumnKind {
	nonEmpty := 0
	allInts := true
	allDates := true

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		nonEmpty++
		if !domain.ParseNullInt(v).Valid {
			allInts = false
		}
		if !parsesAsDate(v) {
			allDates = false
		}
	}

	switch {
	case nonEmpty == 0:
		return KindText
	case allInts:
		return KindInteger
	case allDates:
		return KindDate
	default:
		return KindText
	}
}

func parsesAsDate(v string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

// summarizeInts computes count/min/max/mean over parseable cells.
func summarizeInts(values []string) (NumericSummary, bool) {
	var s NumericSummary
	var sum int64

	for _, v := range values {
		n := domain.ParseNullInt(v)
		if !n.Valid {
			continue
		}
		if s.Count == 0 || n.Value < s.Min {
			s.Min = n.Value
		}
		if s.Count == 0 || n.Value > s.Max {
			s.Max = n.Value
		}
		sum += n.Value
		s.Count++
	}

	if s.Count == 0 {
		return s, false
	}
	s.Mean = float64(sum) / float64(s.Count)
	return s, true
}
