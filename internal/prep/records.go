package prep

import (
	"strings"
	"time"

	"paracli/internal/dataset"
	"paracli/internal/errors"
	"paracli/pkg/contracts/domain"
)

// Records converts a prepared table into typed games records for storage
// and reporting. The year and sports columns are optional; everything the
// pipeline itself produces is required.
func Records(t *dataset.Table) ([]domain.GamesRecord, error) {
	required := []string{
		"type", "country", "host", "start", "end", "duration",
		"countries", "events", "participants_m", "participants_f", "participants", "Code",
	}
	for _, col := range required {
		if !t.HasColumn(col) {
			return nil, errors.NewSchemaError(col)
		}
	}

	records := make([]domain.GamesRecord, 0, t.RowCount())
	for i := 0; i < t.RowCount(); i++ {
		start, err := parsePreparedDate(t, i, "start")
		if err != nil {
			return nil, err
		}
		end, err := parsePreparedDate(t, i, "end")
		if err != nil {
			return nil, err
		}

		records = append(records, domain.GamesRecord{
			Type:          cell(t, i, "type"),
			Year:          domain.ParseNullInt(cell(t, i, "year")),
			Country:       cell(t, i, "country"),
			Host:          cell(t, i, "host"),
			Start:         start,
			End:           end,
			Duration:      domain.ParseNullInt(cell(t, i, "duration")),
			Countries:     domain.ParseNullInt(cell(t, i, "countries")),
			Events:        domain.ParseNullInt(cell(t, i, "events")),
			Sports:        domain.ParseNullInt(cell(t, i, "sports")),
			ParticipantsM: domain.ParseNullInt(cell(t, i, "participants_m")),
			ParticipantsF: domain.ParseNullInt(cell(t, i, "participants_f")),
			Participants:  domain.ParseNullInt(cell(t, i, "participants")),
			Code:          cell(t, i, "Code"),
		})
	}
	return records, nil
}

// cell returns the value at row i of the named column, or the empty
// string when the column does not exist.
func cell(t *dataset.Table, i int, name string) string {
	v, err := t.Cell(i, name)
	if err != nil {
		return ""
	}
	return v
}

// parsePreparedDate reads a calendar date cell; empty means unset.
func parsePreparedDate(t *dataset.Table, i int, name string) (time.Time, error) {
	v := strings.TrimSpace(cell(t, i, name))
	if v == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(isoDateLayout, v)
	if err != nil {
		return time.Time{}, errors.NewDateParseError(name, v, err)
	}
	return d, nil
}
