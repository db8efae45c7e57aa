// Package decode builds nested map structures from common configuration
// formats, ready to be wrapped by fuzzmap. Supported formats: JSON, YAML,
// and TOML.
package decode

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/fuzzkit/fuzzmap/errors"
)

// ErrUnknownFormat indicates a file extension no decoder is registered for.
var ErrUnknownFormat = errors.New("unknown data format")

// JSON decodes a JSON document into a nested map.
func JSON(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode JSON")
	}
	return out, nil
}

// YAML decodes a YAML document into a nested map.
func YAML(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode YAML")
	}
	return out, nil
}

// TOML decodes a TOML document into a nested map.
func TOML(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode TOML")
	}
	return out, nil
}

// File reads a file and decodes it based on its extension
// (.json, .yaml, .yml, .toml).
func File(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON(data)
	case ".yaml", ".yml":
		return YAML(data)
	case ".toml":
		return TOML(data)
	default:
		return nil, errors.WithHint(
			errors.Wrapf(ErrUnknownFormat, "no decoder for %s", path),
			"supported extensions are .json, .yaml, .yml, and .toml")
	}
}
