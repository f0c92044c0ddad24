package schema

import (
	"fmt"
	"maps"
	"time"
)

// TimestampLayout is the textual form timestamps are written in.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// timestampLayouts are accepted when importing, in order.
var timestampLayouts = []string{
	TimestampLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Coercion converts a field between its on-the-wire value (export) and its
// in-memory value (import). Either direction may be nil, meaning identity.
type Coercion struct {
	Import func(raw any) (any, error)
	Export func(value any) (any, error)
}

// Coercions maps field names to their coercions.
type Coercions map[string]Coercion

// MergeCoercions merges coercion tables left to right.
func MergeCoercions(tables ...Coercions) Coercions {
	out := make(Coercions)
	for _, t := range tables {
		maps.Copy(out, t)
	}
	return out
}

// builtinCoercions returns the coercions of the built-in fields.
func builtinCoercions() Coercions {
	return Coercions{
		"timestamp": TimestampCoercion(),
	}
}

// TimestampCoercion converts between TimestampLayout strings and time.Time.
// Nil passes through in both directions.
func TimestampCoercion() Coercion {
	return Coercion{
		Import: importTimestamp,
		Export: exportTimestamp,
	}
}

func importTimestamp(raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case string:
		return ParseTimestamp(v)
	}
	return nil, fmt.Errorf("unsupported timestamp type %T", raw)
}

func exportTimestamp(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return FormatTimestamp(v), nil
	case string:
		t, err := ParseTimestamp(v)
		if err != nil {
			return nil, err
		}
		return FormatTimestamp(t), nil
	}
	return nil, fmt.Errorf("unsupported timestamp type %T", value)
}

// ParseTimestamp parses s in any of the accepted layouts. Timestamps
// without a zone are taken to be UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing timestamp %q", s)
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
