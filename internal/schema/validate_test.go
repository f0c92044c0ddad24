package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name string
		fn   Validator
		ok   []any
		bad  []any
	}{
		{"Int", Int(), []any{0, int64(-3), uint8(4)}, []any{1.0, "1", true, nil}},
		{"IntRange", IntRange(0, 3), []any{int64(0), int64(3)}, []any{int64(4), int64(-1), 2.0}},
		{"IntMin", IntMin(0), []any{int64(0), int64(1 << 40)}, []any{int64(-1)}},
		{"IntIn", IntIn(0, 1), []any{int64(1)}, []any{int64(2), "1"}},
		{"Float", Float(), []any{1.5, int64(2), float32(1)}, []any{"1.5", nil}},
		{"FloatRange excl", FloatRange(0, 360, false), []any{0.0, 359.9}, []any{360.0, -0.1}},
		{"FloatRange incl", FloatRange(0, 102, true), []any{102.0}, []any{102.1}},
		{"FloatMin", FloatMin(0), []any{0.0, int64(7)}, []any{-1.0}},
		{"In", In(1022.0, 1023.0), []any{1023.0, int64(1022)}, []any{1021.0, "1023"}},
		{"In strings", In("a", "b"), []any{"a"}, []any{"c", 1}},
		{"String", String(), []any{""}, []any{nil, 1}},
		{"DateTime", DateTime(), []any{time.Now()}, []any{"2015-01-01T00:00:00Z"}},
		{"Nullable", Nullable(Int()), []any{nil, int64(1)}, []any{"x"}},
		{"Any", Any(IntRange(0, 359), IntIn(511)), []any{int64(511), int64(10)}, []any{int64(400)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.ok {
				assert.True(t, tt.fn(v), "%v (%T) should be valid", v, v)
			}
			for _, v := range tt.bad {
				assert.False(t, tt.fn(v), "%v (%T) should be invalid", v, v)
			}
		})
	}
}
