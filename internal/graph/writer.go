package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/pagegraph/internal/foundation/normalization"
)

// Format is an output encoding for the build graph.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var formats = normalization.NewNormalizer(map[string]Format{
	"json": FormatJSON,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
}, FormatJSON)

// ParseFormat maps a format name onto a Format. Empty is JSON.
func ParseFormat(name string) (Format, error) {
	f, ok := formats.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown output format %q (valid: %s)", name, strings.Join(formats.ValidKeys(), ", "))
	}
	return f, nil
}

// FormatForPath picks the format from a file extension, falling back to def.
func FormatForPath(path string, def Format) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return def
	}
	if f, ok := formats.Lookup(ext); ok {
		return f
	}
	return def
}

// Encode writes g to w.
func Encode(w io.Writer, g *BuildGraph, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// WriteFile encodes g to path, creating parent directories.
func WriteFile(path string, g *BuildGraph, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path) // #nosec G304 -- output path chosen by the operator
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, g, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
