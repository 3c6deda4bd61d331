package rules

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
	"git.home.luguber.info/inful/pagegraph/internal/logfields"
)

// NodeModulesResolver locates loader and plugin packages the way the bundler
// would, under a node_modules directory.
type NodeModulesResolver struct {
	Dir string
}

// Manifest returns the package.json path that must exist for id.
func (r NodeModulesResolver) Manifest(id string) string {
	return filepath.Join(r.Dir, filepath.FromSlash(PackageName(id)), "package.json")
}

// Resolve fails with ErrUnresolvableLoader when id's package is missing.
func (r NodeModulesResolver) Resolve(id string) error {
	manifest := r.Manifest(id)
	info, err := os.Stat(manifest)
	switch {
	case err == nil && !info.IsDir():
		return nil
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return ferrors.UnresolvableLoader(id, manifest)
	default:
		return ferrors.FileSystemError("failed to inspect loader package").
			WithCause(err).
			WithContext("loader", id).
			WithContext("path", manifest).
			Build()
	}
}

// Verify resolves every id in order and returns the first failure.
func (r NodeModulesResolver) Verify(ids []string) error {
	for _, id := range ids {
		if err := r.Resolve(id); err != nil {
			return err
		}
		slog.Debug("Resolved loader", logfields.Loader(id))
	}
	return nil
}
