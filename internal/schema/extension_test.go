package schema

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Load(t *testing.T) {
	tables, err := File(filepath.Join("testdata", "extension.yaml")).Load()
	require.NoError(t, err)

	require.Contains(t, tables.Fields, "vessel_class")
	vc := tables.Fields["vessel_class"]
	assert.True(t, vc.HasDefault)
	assert.Equal(t, int64(0), vc.Default)
	assert.True(t, vc.Validate(int64(5)))
	assert.False(t, vc.Validate(int64(6)))

	src := tables.Fields["source"]
	assert.True(t, src.HasDefault)
	assert.Nil(t, src.Default)
	assert.True(t, src.Validate(nil))
	assert.True(t, src.Validate("rx-1"))
	assert.False(t, src.Validate(int64(1)))

	score := tables.Fields["score"]
	assert.False(t, score.HasDefault)
	assert.True(t, score.Validate(0.5))
	assert.False(t, score.Validate(1.0))

	assert.Equal(t, []string{"vessel_class", "source"}, tables.FieldsByType[1])
	assert.Equal(t, "Fleet Classification Report", tables.TypeDescriptions[30])
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}

func TestParseYAML_UnknownValidatorKind(t *testing.T) {
	_, err := ParseYAML([]byte("fields:\n  x:\n    validate: {kind: regex}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "regex")
}

func TestParseYAML_InValues(t *testing.T) {
	tables, err := ParseYAML([]byte("fields:\n  x:\n    validate: {kind: in, values: [1, 2, three]}\n"))
	require.NoError(t, err)

	v := tables.Fields["x"].Validate
	assert.True(t, v(int64(2)))
	assert.True(t, v("three"))
	assert.False(t, v(int64(3)))
}

func TestParseYAML_IntBoundsSaturate(t *testing.T) {
	tables, err := ParseYAML([]byte("fields:\n  x:\n    validate: {kind: int, min: -1e19, max: 1e19}\n  y:\n    validate: {kind: int, min: 10, max: 9.3e18}\n"))
	require.NoError(t, err)

	x := tables.Fields["x"].Validate
	assert.True(t, x(int64(math.MaxInt64)))
	assert.True(t, x(int64(math.MinInt64)))
	assert.True(t, x(int64(0)))

	y := tables.Fields["y"].Validate
	assert.True(t, y(int64(math.MaxInt64)))
	assert.False(t, y(int64(9)))
}

func TestParseYAML_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fields: [not, a, map]"), 0o644))

	_, err := File(path).Load()
	assert.Error(t, err)
}
