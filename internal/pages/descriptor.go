// Package pages discovers page descriptors and derives build entries from them.
package pages

import (
	"path"
	"strings"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
)

// Descriptor is one page of the application.
type Descriptor struct {
	// Name is unique among pages and is used as the entry name.
	Name string `json:"name" yaml:"name"`
	// Entry is the page's entry module.
	Entry string `json:"entry" yaml:"entry"`
	// Template is the HTML template, relative to the project root unless absolute.
	Template string `json:"template" yaml:"template"`
	// Filename is the output HTML path relative to the output directory.
	Filename string `json:"filename" yaml:"filename"`
}

// DefaultFilename is the conventional output path for a page.
func DefaultFilename(name string) string {
	return path.Join(name, "index.html")
}

// withDefaults fills the optional fields and validates the required ones.
func (d Descriptor) withDefaults(index int, defaultTemplate string) (Descriptor, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Entry = strings.TrimSpace(d.Entry)

	switch {
	case d.Name == "":
		return d, ferrors.InvalidPage(index, d.Name, "name", "required")
	case strings.ContainsAny(d.Name, `/\`):
		return d, ferrors.InvalidPage(index, d.Name, "name", "must not contain path separators")
	case d.Name == "." || d.Name == "..":
		return d, ferrors.InvalidPage(index, d.Name, "name", "must not be a relative path element")
	case d.Entry == "":
		return d, ferrors.InvalidPage(index, d.Name, "entry", "required")
	}

	if d.Template == "" {
		d.Template = defaultTemplate
	}
	if d.Template == "" {
		return d, ferrors.InvalidPage(index, d.Name, "template", "required when no default template is configured")
	}
	if d.Filename == "" {
		d.Filename = DefaultFilename(d.Name)
	}
	if path.IsAbs(d.Filename) || strings.HasPrefix(path.Clean(d.Filename), "..") {
		return d, ferrors.InvalidPage(index, d.Name, "filename", "must stay inside the output directory")
	}
	return d, nil
}
