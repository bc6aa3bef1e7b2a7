package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNullInt(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  NullInt
	}{
		{name: "plain integer", raw: "4520", want: Int(4520)},
		{name: "leading and trailing space", raw: " 161 ", want: Int(161)},
		{name: "float with integral value", raw: "4520.0", want: Int(4520)},
		{name: "thousands separator", raw: "4,520", want: Int(4520)},
		{name: "empty is missing", raw: "", want: NullInt{}},
		{name: "whitespace only is missing", raw: "   ", want: NullInt{}},
		{name: "non-numeric is missing", raw: "unknown", want: NullInt{}},
		{name: "fractional value is missing", raw: "45.7", want: NullInt{}},
		{name: "zero is valid", raw: "0", want: Int(0)},
		{name: "negative", raw: "-3", want: Int(-3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNullInt(tt.raw))
		})
	}
}

func TestNullIntString(t *testing.T) {
	assert.Equal(t, "14", Int(14).String())
	assert.Equal(t, "0", Int(0).String())
	assert.Equal(t, "", NullInt{}.String())
}

func TestNullIntDriverValue(t *testing.T) {
	v, err := Int(7).DriverValue()
	assert.NoError(t, err)
	assert.Equal(t, int64(7), v)

	v, err = NullInt{}.DriverValue()
	assert.NoError(t, err)
	assert.Nil(t, v)
}
