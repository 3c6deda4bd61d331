package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pagegraph/internal/config"
)

type fixedHost string

func (h fixedHost) Host() string { return string(h) }

// newProject lays out a project with one directory per page and a shared
// template, and loads its configuration.
func newProject(t *testing.T, configBody string, pageNames ...string) *config.Config {
	t.Helper()
	root := t.TempDir()
	for _, name := range pageNames {
		dir := filepath.Join(root, "src", "views", name)
		require.NoError(t, os.MkdirAll(dir, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "main.js"), []byte("import './app.scss'\n"), 0o600))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "public"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "public", "index.html"),
		[]byte("<!DOCTYPE html><html><head><title>app</title></head><body><div id=\"app\"></div></body></html>"), 0o600))

	path := filepath.Join(root, config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(configBody), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg
}

func installPackages(t *testing.T, root string, pkgs ...string) {
	t.Helper()
	for _, pkg := range pkgs {
		dir := filepath.Join(root, "node_modules", filepath.FromSlash(pkg))
		require.NoError(t, os.MkdirAll(dir, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o600))
	}
}
