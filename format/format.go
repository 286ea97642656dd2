package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// DetectPath guesses a format from a file path's extension, defaulting to
// JSON.
func DetectPath(path string) Format {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return YAMLFormat
	}
	return JSONFormat
}

// Decode parses a document into container values: map[string]any for
// mappings, []any for sequences, and scalar leaves otherwise.
func Decode(d []byte, f Format) (any, error) {
	var v any
	switch f {
	case JSONFormat:
		if err := json.Unmarshal(d, &v); err != nil {
			return nil, err
		}
	case YAMLFormat:
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
	return v, nil
}

// Encode renders a container value as a document in f.
func Encode(v any, f Format) ([]byte, error) {
	switch f {
	case JSONFormat:
		return json.MarshalIndent(v, "", "  ")
	case YAMLFormat:
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
}
