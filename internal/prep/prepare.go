package prep

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"paracli/internal/dataset"
	"paracli/internal/errors"
	"paracli/pkg/contracts/domain"
)

const (
	// rawDateLayout is the day/month/year format used by the raw files
	rawDateLayout = "02/01/2006"
	// isoDateLayout is the calendar date format used in prepared output
	isoDateLayout = "2006-01-02"
)

var (
	// droppedColumns are the low-value columns removed from the raw table
	droppedColumns = []string{"URL", "disabilities_included", "highlights"}

	// droppedRowPositions are the known bad records, addressed by ordinal
	// position in the raw table. Positional removal is order-sensitive and
	// brittle; it is kept for compatibility with the historical data set.
	// TODO: key removal by year+type once the raw file carries a stable ID.
	droppedRowPositions = []int{0, 17, 31}

	// countColumns are coerced to nullable integers
	countColumns = []string{"countries", "events", "participants_m", "participants_f", "participants"}

	// textColumns carry free text; listed to make the schema contract
	// explicit even though string cells need no conversion
	textColumns = []string{"type", "country", "host"}

	// replacementNames maps the short country names used in the raw games
	// table to the canonical names in the committee reference table. The
	// substitution is exact-match and runs before the join.
	replacementNames = map[string]string{
		"UK":     "Great Britain",
		"USA":    "United States of America",
		"Korea":  "Republic of Korea",
		"Russia": "Russian Federation",
		"China":  "People's Republic of China",
	}
)

// Pipeline transforms a raw games table into the prepared form: low-value
// columns dropped, known bad rows removed, counts coerced to nullable
// integers, dates parsed with a derived duration, and countries resolved
// to committee codes.
type Pipeline struct {
	logger *slog.Logger
}

// New creates a preparation pipeline.
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// Prepare runs every preparation step in order and returns a new table;
// the raw input is never modified. Any schema, bounds, or date failure
// aborts the whole run; numeric cells that fail to parse become the
// missing marker instead.
func (p *Pipeline) Prepare(ctx context.Context, raw, codes *dataset.Table) (*dataset.Table, error) {
	p.logger.InfoContext(ctx, "starting preparation",
		slog.Int("rows", raw.RowCount()),
		slog.Int("columns", raw.ColumnCount()))

	t := raw.Clone()

	if err := t.DropColumns(droppedColumns...); err != nil {
		return nil, err
	}
	p.logger.DebugContext(ctx, "dropped low-value columns",
		slog.Any("columns", droppedColumns))

	if err := t.DropRows(droppedRowPositions...); err != nil {
		return nil, err
	}
	p.logger.DebugContext(ctx, "dropped known bad rows",
		slog.Any("positions", droppedRowPositions),
		slog.Int("rows", t.RowCount()))

	if err := p.normalizeType(t); err != nil {
		return nil, err
	}

	if err := p.coerceCounts(t); err != nil {
		return nil, err
	}

	if err := p.parseDatesAndDuration(ctx, t); err != nil {
		return nil, err
	}

	// Text typing is declaration only for string cells; the columns must
	// still exist for the table to be well-formed.
	for _, col := range textColumns {
		if !t.HasColumn(col) {
			return nil, errors.NewSchemaError(col)
		}
	}

	if err := p.resolveCountries(ctx, t, codes); err != nil {
		return nil, err
	}

	p.logger.InfoContext(ctx, "preparation complete",
		slog.Int("rows", t.RowCount()),
		slog.Int("columns", t.ColumnCount()))
	return t, nil
}

// normalizeType trims surrounding whitespace from every type value and
// lowercases cells that are then exactly "Summer". Other casings pass
// through untouched; unknown season values are deliberately not rejected.
func (p *Pipeline) normalizeType(t *dataset.Table) error {
	return t.MapColumn("type", func(v string) string {
		v = strings.TrimSpace(v)
		if v == "Summer" {
			return strings.ToLower(v)
		}
		return v
	})
}

// coerceCounts rewrites each count column through the nullable integer
// parser: well-formed numbers normalize, anything else becomes the
// missing marker. This step never fails a run.
func (p *Pipeline) coerceCounts(t *dataset.Table) error {
	for _, col := range countColumns {
		if err := t.MapColumn(col, func(v string) string {
			return domain.ParseNullInt(v).String()
		}); err != nil {
			return err
		}
	}
	return nil
}

// parseDatesAndDuration converts start and end to calendar dates and
// inserts the whole-day duration immediately after end. Empty date cells
// stay empty with a missing duration; unparseable ones are fatal.
func (p *Pipeline) parseDatesAndDuration(ctx context.Context, t *dataset.Table) error {
	starts, err := p.parseDateColumn(t, "start")
	if err != nil {
		return err
	}
	ends, err := p.parseDateColumn(t, "end")
	if err != nil {
		return err
	}

	durations := make([]string, t.RowCount())
	for i := range durations {
		if starts[i] == nil || ends[i] == nil {
			continue
		}
		days := int64(ends[i].Sub(*starts[i]) / (24 * time.Hour))
		durations[i] = domain.Int(days).String()
	}

	endIdx, ok := t.ColumnIndex("end")
	if !ok {
		return errors.NewSchemaError("end")
	}
	if err := t.InsertColumn("duration", endIdx+1, durations); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "parsed dates and derived duration",
		slog.Int("rows", t.RowCount()))
	return nil
}

// parseDateColumn parses the named column in day/month/year form and
// rewrites it in calendar date form. Returns the parsed dates, nil for
// empty cells.
func (p *Pipeline) parseDateColumn(t *dataset.Table, name string) ([]*time.Time, error) {
	values, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	parsed := make([]*time.Time, len(values))
	for i, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		d, err := time.Parse(rawDateLayout, v)
		if err != nil {
			return nil, errors.NewDateParseError(name, v, err)
		}
		parsed[i] = &d
	}

	if err := t.MapColumn(name, func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		d, _ := time.Parse(rawDateLayout, v)
		return d.Format(isoDateLayout)
	}); err != nil {
		return nil, err
	}
	return parsed, nil
}

// resolveCountries applies the fixed alias substitutions to the country
// column, then left-joins against the committee reference table on the
// canonical name. Countries without a match keep an empty code; no row is
// ever dropped by the join.
func (p *Pipeline) resolveCountries(ctx context.Context, t, codes *dataset.Table) error {
	if err := t.MapColumn("country", func(v string) string {
		if canonical, ok := replacementNames[v]; ok {
			return canonical
		}
		return v
	}); err != nil {
		return err
	}

	codeByName, err := CodeMap(codes)
	if err != nil {
		return err
	}

	countries, err := t.Column("country")
	if err != nil {
		return err
	}

	matched := 0
	resolved := make([]string, len(countries))
	for i, country := range countries {
		if code, ok := codeByName[country]; ok {
			resolved[i] = code
			matched++
		}
	}

	if err := t.AppendColumn("Code", resolved); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "resolved committee codes",
		slog.Int("matched", matched),
		slog.Int("unmatched", len(countries)-matched))
	return nil
}
