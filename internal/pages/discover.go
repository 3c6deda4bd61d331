package pages

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
	"git.home.luguber.info/inful/pagegraph/internal/logfields"
)

// EntryBase is the entry module file name without extension.
const EntryBase = "main"

// Options controls page discovery.
type Options struct {
	// Explicit, when non-empty, replaces filesystem discovery. Its order is kept.
	Explicit []Descriptor
	// Root is the directory holding one sub-directory per page.
	Root string
	// Extensions are tried in order for <Root>/<page>/main.<ext>.
	Extensions []string
	// DefaultTemplate is used for pages that do not name a template.
	DefaultTemplate string
}

// Discover returns the page descriptors for opts. An explicit list is
// validated and returned in declaration order. Otherwise each directory
// directly under Root becomes one page; other entries are skipped. Discovered
// pages are sorted by name.
func Discover(opts Options) ([]Descriptor, error) {
	if len(opts.Explicit) > 0 {
		return validateExplicit(opts.Explicit, opts.DefaultTemplate)
	}

	entries, err := os.ReadDir(opts.Root)
	if err != nil {
		return nil, ferrors.DiscoveryFailed(opts.Root, err)
	}

	pages := make([]Descriptor, 0, len(entries))
	for _, entry := range entries {
		dir := filepath.Join(opts.Root, entry.Name())
		isDir, err := isDirectory(dir, entry)
		if err != nil {
			return nil, ferrors.DiscoveryFailed(dir, err)
		}
		if !isDir {
			slog.Debug("Skipping non-directory in page root", logfields.Path(dir))
			continue
		}

		name := norm.NFC.String(entry.Name())
		pages = append(pages, Descriptor{
			Name:     name,
			Entry:    entryPath(dir, name, opts.Extensions),
			Template: opts.DefaultTemplate,
			Filename: DefaultFilename(name),
		})
	}

	slices.SortFunc(pages, func(a, b Descriptor) int { return strings.Compare(a.Name, b.Name) })
	for i := range pages {
		if _, err := pages[i].withDefaults(i, opts.DefaultTemplate); err != nil {
			return nil, err
		}
	}
	slog.Debug("Discovered pages", logfields.Path(opts.Root), logfields.Count(len(pages)))
	return pages, nil
}

func validateExplicit(explicit []Descriptor, defaultTemplate string) ([]Descriptor, error) {
	out := make([]Descriptor, 0, len(explicit))
	for i, d := range explicit {
		valid, err := d.withDefaults(i, defaultTemplate)
		if err != nil {
			return nil, err
		}
		out = append(out, valid)
	}
	return out, nil
}

// isDirectory follows symlinks so linked page directories are discovered.
func isDirectory(path string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// entryPath picks the first existing main.<ext>. When none exists the first
// extension is used and the bundler reports the missing module.
func entryPath(dir, page string, extensions []string) string {
	for _, ext := range extensions {
		candidate := filepath.Join(dir, EntryBase+"."+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	ext := "js"
	if len(extensions) > 0 {
		ext = extensions[0]
	}
	candidate := filepath.Join(dir, EntryBase+"."+ext)
	slog.Warn("Page has no entry module", logfields.Page(page), logfields.Entry(candidate))
	return candidate
}
