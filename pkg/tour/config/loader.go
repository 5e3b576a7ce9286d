package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// Format names a config file syntax.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// ErrUnsupportedFormat indicates a file extension or Format with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// FormatOf picks the Format for path from its extension:
// .yaml and .yml, .json, .hcl.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// FromFile loads the config file at path in the format its extension names.
func FromFile(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, format, path)
}

// Parse decodes data written in format. name labels HCL diagnostics.
func Parse(data []byte, format Format, name string) (Config, error) {
	var (
		values map[string]any
		err    error
	)
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &values)
	case FormatJSON:
		err = json.Unmarshal(data, &values)
	case FormatHCL:
		values, err = decodeHCL(data, name)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s config: %w", format, err)
	}
	return New(values), nil
}

// decodeHCL reads top-level attributes. Blocks and variable references are
// errors. Values come back with JSON typing: numbers are float64, lists are
// []any.
func decodeHCL(data []byte, name string) (map[string]any, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	values := make(map[string]any, len(attrs))
	for key, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}

		raw, err := ctyjson.Marshal(val, val.Type())
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", key, err)
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("attribute %s: %w", key, err)
		}
		values[key] = v
	}
	return values, nil
}
