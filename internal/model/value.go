package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValueKind discriminates the representations a metric value can take.
type ValueKind int

const (
	KindInt ValueKind = iota
	KindFloat
	KindText
)

// Value is one metric value as reported by the upstream. GA4 serializes every
// metric as a string; Coerce narrows that string to a number where possible
// and keeps the raw text otherwise.
type Value struct {
	kind ValueKind
	i    int64
	f    float64
	s    string
}

// IntValue builds an integer Value.
func IntValue(v int64) Value { return Value{kind: KindInt, i: v} }

// FloatValue builds a floating-point Value.
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }

// TextValue builds a Value holding a non-numeric string.
func TextValue(v string) Value { return Value{kind: KindText, s: v} }

// Coerce parses an upstream metric string. A value containing a '.' becomes a
// float, anything else an integer, and input that parses as neither is kept
// as text rather than treated as an error.
func Coerce(raw string) Value {
	if strings.Contains(raw, ".") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return TextValue(raw)
		}
		return FloatValue(f)
	}
	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return TextValue(raw)
	}
	return IntValue(i)
}

// Kind reports which representation the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the value as an integer, truncating floats. Text values and the
// zero Value yield 0, so a missing metric reads as zero.
func (v Value) Int() int64 {
	switch v.kind {
	case KindFloat:
		return int64(v.f)
	case KindText:
		return 0
	default:
		return v.i
	}
}

// Float returns the value as a float. Text values yield 0.
func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindText:
		return 0
	default:
		return float64(v.i)
	}
}

// Text returns the raw string for text values and the formatted number
// otherwise.
func (v Value) Text() string {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindText:
		return v.s
	default:
		return strconv.FormatInt(v.i, 10)
	}
}

// MarshalJSON emits the underlying representation: a JSON number for numeric
// values, a JSON string for text.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindFloat:
		return json.Marshal(v.f)
	case KindText:
		return json.Marshal(v.s)
	default:
		return json.Marshal(v.i)
	}
}
