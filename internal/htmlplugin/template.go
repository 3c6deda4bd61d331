package htmlplugin

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
	"git.home.luguber.info/inful/pagegraph/internal/logfields"
)

// TemplateInfo describes the structure of a template relevant to script
// injection.
type TemplateInfo struct {
	HasHead bool
	HasBody bool
}

// VerifyTemplates checks that every spec's template exists. Relative template
// paths are resolved against root. Each distinct template is inspected once;
// templates without an explicit <head> or <body> are reported with a warning.
func VerifyTemplates(root string, specs []Spec) error {
	inspected := make(map[string]bool)
	for i, spec := range specs {
		path := spec.Template
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		page := ""
		if len(spec.Chunks) > 0 {
			page = spec.Chunks[0]
		}
		if inspected[path] {
			continue
		}
		inspected[path] = true

		info, err := InspectTemplate(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return ferrors.MissingTemplate(page, path, err)
			}
			return ferrors.WrapError(err, ferrors.CategoryTemplate, "failed to read html template").
				Fatal().
				WithContext("page", page).
				WithContext("path", path).
				WithContext("index", i).
				Build()
		}
		if !info.HasHead || !info.HasBody {
			slog.Warn("Template lacks explicit head or body; scripts go into synthesized elements",
				logfields.Page(page), logfields.Template(path))
		}
	}
	return nil
}

// InspectTemplate tokenizes the template at path.
func InspectTemplate(path string) (TemplateInfo, error) {
	f, err := os.Open(path) // #nosec G304 -- template paths come from the project configuration
	if err != nil {
		return TemplateInfo{}, err
	}
	defer func() { _ = f.Close() }()

	info, err := inspect(f)
	if err != nil {
		return TemplateInfo{}, err
	}
	return info, nil
}

func inspect(r io.Reader) (TemplateInfo, error) {
	var info TemplateInfo
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return info, nil
			}
			return info, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Head:
				info.HasHead = true
			case atom.Body:
				info.HasBody = true
			}
		}
	}
}
