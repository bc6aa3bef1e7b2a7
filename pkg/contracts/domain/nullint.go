package domain

import (
	"database/sql/driver"
	"strconv"
	"strings"
)

// NullInt is an integer that can also hold an explicit missing state.
// Missing is distinct from zero: a games edition with zero recorded events
// is not the same as one whose event count is unknown.
type NullInt struct {
	Value int64
	Valid bool
}

// Int returns a valid NullInt holding v.
func Int(v int64) NullInt {
	return NullInt{Value: v, Valid: true}
}

// NullInt64 returns the missing marker.
func NullInt64() NullInt {
	return NullInt{}
}

// ParseNullInt converts a raw cell into a NullInt. Values that cannot be
// read as a whole number become the missing marker rather than an error,
// matching the pipeline's non-destructive numeric coercion. Float-looking
// values with an integral part ("4520.0") and thousands separators
// ("4,520") are accepted.
func ParseNullInt(raw string) NullInt {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return NullInt{}
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(v)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return Int(int64(f))
	}
	return NullInt{}
}

// String renders the value for CSV output; missing renders as the empty
// string so repeat runs stay byte-identical.
func (n NullInt) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatInt(n.Value, 10)
}

// Driver value for database storage; missing maps to SQL NULL.
func (n NullInt) DriverValue() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Value, nil
}
