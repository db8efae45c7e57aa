package decode_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzzkit/fuzzmap"
	"github.com/fuzzkit/fuzzmap/decode"
	"github.com/fuzzkit/fuzzmap/errors"
)

func TestJSON(t *testing.T) {
	data, err := decode.JSON([]byte(`{"person": {"name": "John", "age": 30}}`))
	require.NoError(t, err)

	person, ok := data["person"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "John", person["name"])
	assert.Equal(t, float64(30), person["age"])
}

func TestJSONInvalid(t *testing.T) {
	_, err := decode.JSON([]byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON")
}

func TestYAML(t *testing.T) {
	data, err := decode.YAML([]byte("person:\n  name: John\n  age: 30\n"))
	require.NoError(t, err)

	person, ok := data["person"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "John", person["name"])
	assert.Equal(t, 30, person["age"])
}

func TestYAMLInvalid(t *testing.T) {
	_, err := decode.YAML([]byte("person: [unclosed"))
	require.Error(t, err)
}

func TestTOML(t *testing.T) {
	data, err := decode.TOML([]byte("[person]\nname = \"John\"\nage = 30\n"))
	require.NoError(t, err)

	person, ok := data["person"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "John", person["name"])
	assert.Equal(t, int64(30), person["age"])
}

func TestTOMLInvalid(t *testing.T) {
	_, err := decode.TOML([]byte("= broken"))
	require.Error(t, err)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"data.json", `{"person": {"name": "John"}}`},
		{"data.yaml", "person:\n  name: John\n"},
		{"data.yml", "person:\n  name: John\n"},
		{"data.toml", "[person]\nname = \"John\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			data, err := decode.File(path)
			require.NoError(t, err)

			person, ok := data["person"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "John", person["name"])
		})
	}
}

func TestFileUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.ini")
	require.NoError(t, os.WriteFile(path, []byte("a=1"), 0o644))

	_, err := decode.File(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, decode.ErrUnknownFormat))
}

func TestFileMissing(t *testing.T) {
	_, err := decode.File(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

// Decoded documents plug straight into fuzzy resolution.
func TestDecodeIntoFuzzyLookup(t *testing.T) {
	data, err := decode.YAML([]byte("person:\n  name: John\n  address:\n    city: New York\n"))
	require.NoError(t, err)

	m, err := fuzzmap.New(data, fuzzmap.WithThreshold(75))
	require.NoError(t, err)

	v, err := m.FuzzyGet("persn.adress.city")
	require.NoError(t, err)
	assert.Equal(t, "New York", v)
}
