// Package document decodes JSON and YAML input into the generic values
// fluentcheck validates: map[string]any, []any, string, bool, nil and
// json.Number (JSON) or int/float64 (YAML).
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format names a supported encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnsupportedFormat is returned for formats or file extensions other than JSON and YAML.
	ErrUnsupportedFormat = errors.New("document: unsupported format")
	// ErrTrailingData is returned when JSON input holds more than one value.
	ErrTrailingData = errors.New("document: trailing data after JSON value")
)

// ParseFormat maps a user-supplied name ("json", "yaml", "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Decode parses data in the given format.
func Decode(data []byte, f Format) (any, error) {
	return DecodeReader(bytes.NewReader(data), f)
}

// DecodeReader parses the whole of r in the given format.
func DecodeReader(r io.Reader, f Format) (any, error) {
	switch f {
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// DecodeFile reads path and decodes it according to its extension.
func DecodeFile(path string) (any, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: open %s: %w", path, err)
	}
	defer fh.Close()
	return DecodeReader(fh, f)
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("document: decode json: %w", err)
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return v, nil
}

func decodeYAML(r io.Reader) (any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("document: decode yaml: %w", err)
	}
	return normalize(v), nil
}

// normalize turns map[any]any (YAML mappings with non-string keys) into
// map[string]any so every mapping classifies as an object.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i := range t {
			t[i] = normalize(t[i])
		}
		return t
	}
	return v
}
