package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Value
	}{
		{name: "integer", raw: "123", want: IntValue(123)},
		{name: "float", raw: "12.5", want: FloatValue(12.5)},
		{name: "text", raw: "abc", want: TextValue("abc")},
		{name: "dot but not numeric", raw: "1.2.3", want: TextValue("1.2.3")},
		{name: "zero", raw: "0", want: IntValue(0)},
		{name: "negative", raw: "-7", want: IntValue(-7)},
		{name: "exponent without dot stays text", raw: "1e5", want: TextValue("1e5")},
		{name: "empty string stays text", raw: "", want: TextValue("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Coerce(tt.raw))
		})
	}
}

func TestValueAccessors(t *testing.T) {
	assert.Equal(t, int64(42), IntValue(42).Int())
	assert.Equal(t, float64(42), IntValue(42).Float())
	assert.Equal(t, int64(12), FloatValue(12.9).Int())
	assert.Equal(t, 12.9, FloatValue(12.9).Float())
	assert.Equal(t, int64(0), TextValue("abc").Int())
	assert.Equal(t, float64(0), TextValue("abc").Float())
	assert.Equal(t, "abc", TextValue("abc").Text())

	// The zero Value reads as integer zero, so a missing metric is 0.
	var missing Value
	assert.Equal(t, int64(0), missing.Int())
	assert.Equal(t, float64(0), missing.Float())
}

func TestValueMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "int", v: IntValue(7), want: `7`},
		{name: "float", v: FloatValue(0.25), want: `0.25`},
		{name: "text", v: TextValue("(not set)"), want: `"(not set)"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestRowLookups(t *testing.T) {
	row := Row{
		Dimensions: map[string]string{"country": "Brazil"},
		Metrics:    map[string]Value{"activeUsers": IntValue(12)},
	}

	assert.Equal(t, "Brazil", row.Dimension("country"))
	assert.Equal(t, "", row.Dimension("city"))
	assert.Equal(t, int64(12), row.Metric("activeUsers").Int())
	assert.Equal(t, int64(0), row.Metric("sessions").Int())
}
