package themeconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned when a file extension maps to no Format.
var ErrUnknownFormat = errors.New("unknown configuration format")

// FormatFromPath picks the Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode parses data into a raw tree suitable for Resolve. JSON input may
// contain // and /* */ comments and trailing commas.
func Decode(data []byte, format Format) (map[string]any, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// LoadFile reads and decodes one configuration file.
func LoadFile(path string) (map[string]any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	raw, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}

// LoadFiles loads each path and layers them in order. Later files override
// scalar values and sequences of earlier ones; mappings merge recursively.
func LoadFiles(paths ...string) (map[string]any, error) {
	if len(paths) == 0 {
		return nil, errors.New("themeconf: no configuration files given")
	}
	merged := map[string]any{}
	for _, path := range paths {
		raw, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(&merged, raw, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge %s: %w", path, err)
		}
	}
	return merged, nil
}

// Load is LoadFiles followed by Resolve.
func Load(paths ...string) (SiteConfig, error) {
	raw, err := LoadFiles(paths...)
	if err != nil {
		return SiteConfig{}, err
	}
	return Resolve(raw)
}
