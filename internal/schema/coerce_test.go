package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_RoundTrip(t *testing.T) {
	c := TimestampCoercion()

	for _, raw := range []string{
		"2015-01-01T00:00:00.000000Z",
		"2015-06-30T23:59:59.123456Z",
	} {
		v, err := c.Import(raw)
		require.NoError(t, err)
		require.IsType(t, time.Time{}, v)

		back, err := c.Export(v)
		require.NoError(t, err)
		assert.Equal(t, raw, back)
	}
}

func TestTimestamp_ImportLayouts(t *testing.T) {
	want := time.Date(2015, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, raw := range []string{
		"2015-01-02T03:04:05Z",
		"2015-01-02T03:04:05.000000Z",
		"2015-01-02T05:04:05+02:00",
		"2015-01-02T03:04:05",
	} {
		v, err := importTimestamp(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(v.(time.Time)), "%s imported as %v", raw, v)
	}
}

func TestTimestamp_ExportNormalizes(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	got, err := exportTimestamp(time.Date(2015, 1, 1, 1, 0, 0, 500, loc))
	require.NoError(t, err)
	assert.Equal(t, "2015-01-01T00:00:00.000000Z", got)

	got, err = exportTimestamp("2015-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2015-01-01T00:00:00.000000Z", got)
}

func TestTimestamp_Nil(t *testing.T) {
	c := TimestampCoercion()

	v, err := c.Import(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = c.Export(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestTimestamp_Invalid(t *testing.T) {
	_, err := importTimestamp("yesterday")
	assert.Error(t, err)

	_, err = importTimestamp(int64(12))
	assert.Error(t, err)

	_, err = exportTimestamp(3.5)
	assert.Error(t, err)
}
