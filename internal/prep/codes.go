package prep

import (
	"paracli/internal/dataset"
	"paracli/pkg/contracts/domain"
)

// LoadCodes reads the committee reference table from a CSV file. Only the
// Code and Name columns are kept; both must be present. The table is
// loaded once per run and treated as read-only.
func LoadCodes(path string) (*dataset.Table, error) {
	raw, err := dataset.ReadCSV(path)
	if err != nil {
		return nil, err
	}

	codeValues, err := raw.Column("Code")
	if err != nil {
		return nil, err
	}
	nameValues, err := raw.Column("Name")
	if err != nil {
		return nil, err
	}

	t := dataset.New([]string{"Code", "Name"})
	for i := range codeValues {
		t.AppendRow([]string{codeValues[i], nameValues[i]})
	}
	return t, nil
}

// CodeMap builds the canonical-name-to-code lookup used by the join.
func CodeMap(codes *dataset.Table) (map[string]string, error) {
	codeValues, err := codes.Column("Code")
	if err != nil {
		return nil, err
	}
	nameValues, err := codes.Column("Name")
	if err != nil {
		return nil, err
	}

	m := make(map[string]string, len(nameValues))
	for i, name := range nameValues {
		if name == "" {
			continue
		}
		m[name] = codeValues[i]
	}
	return m, nil
}

// Entries returns the reference table as typed entries.
func Entries(codes *dataset.Table) ([]domain.CodeEntry, error) {
	codeValues, err := codes.Column("Code")
	if err != nil {
		return nil, err
	}
	nameValues, err := codes.Column("Name")
	if err != nil {
		return nil, err
	}

	entries := make([]domain.CodeEntry, len(codeValues))
	for i := range entries {
		entries[i] = domain.CodeEntry{Code: codeValues[i], Name: nameValues[i]}
	}
	return entries, nil
}
