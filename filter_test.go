package gpsdio

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkyTruth/gpsdio/internal/stats"
)

func fleet() []Message {
	return []Message{
		{"type": int64(1), "mmsi": int64(1), "speed": 12.5},
		{"type": int64(1), "mmsi": int64(2), "speed": 3.0},
		{"type": int64(5), "mmsi": int64(2), "shipname": "SEA DOG"},
		{"type": int64(18), "mmsi": int64(3), "speed": 20.0},
	}
}

// drain collects the mmsi of every message src yields.
func drain(t *testing.T, src Source) []any {
	t.Helper()
	var out []any
	for msg, err := range Messages(src) {
		require.NoError(t, err)
		out = append(out, msg["mmsi"])
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		exprs []string
		want  []any
	}{
		{"no expressions", nil, []any{int64(1), int64(2), int64(2), int64(3)}},
		{"equality", []string{"mmsi == 2"}, []any{int64(2), int64(2)}},
		{"membership", []string{"type in [1, 18]"}, []any{int64(1), int64(2), int64(3)}},
		{"all must match", []string{"type == 1", "speed > 10"}, []any{int64(1)}},
		{"missing field", []string{"speed > 1"}, []any{int64(1), int64(2), int64(3)}},
		{"whole message", []string{"msg.type == 5 and msg.mmsi == 2"}, []any{int64(2)}},
		{"string operator", []string{"shipname startsWith 'SEA'"}, []any{int64(2)}},
		{"conditional", []string{"type == 18 ? speed > 15 : false"}, []any{int64(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Filter(&sliceSource{msgs: fleet()}, tt.exprs...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, drain(t, f))
		})
	}
}

func TestFilter_Rejected(t *testing.T) {
	f, err := Filter(&sliceSource{msgs: fleet()}, "mmsi == 3")
	require.NoError(t, err)

	assert.Equal(t, []any{int64(3)}, drain(t, f))
	assert.Equal(t, int64(3), f.Rejected())
}

func TestFilter_InvalidExpressions(t *testing.T) {
	exprs := []string{
		"mmsi ==",
		"len(shipname) > 2",
		"shipname matches 'SEA.*'",
		"map([1, 2], # * 2) == [2, 4]",
	}

	for _, e := range exprs {
		t.Run(e, func(t *testing.T) {
			_, err := Filter(&sliceSource{}, e)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Equal(t, ClassConfiguration, Classify(err))
		})
	}
}

func TestFilter_SourceError(t *testing.T) {
	src := &sliceSource{msgs: fleet()[:1], err: errBroken}
	f, err := Filter(src, "mmsi > 0")
	require.NoError(t, err)

	_, err = f.Next()
	require.NoError(t, err)
	_, err = f.Next()
	assert.ErrorIs(t, err, errBroken)
}

func TestFilter_EOF(t *testing.T) {
	f, err := Filter(&sliceSource{}, "mmsi > 0")
	require.NoError(t, err)

	_, err = f.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestOpener_Filter(t *testing.T) {
	mc := stats.NewMemory()
	o, _ := newTestOpener(t, WithStats(mc))

	f, err := o.Filter(&sliceSource{msgs: fleet()}, "type == 5")
	require.NoError(t, err)

	assert.Equal(t, []any{int64(2)}, drain(t, f))
	assert.Equal(t, int64(3), mc.Counter(stats.MetricFilterRejected))
}
