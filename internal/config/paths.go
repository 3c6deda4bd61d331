package config

import "path/filepath"

// Resolve anchors p at the project root unless it is already absolute.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ProjectRoot, p)
}

// SourcePath returns the absolute source directory.
func (c *Config) SourcePath() string { return c.Resolve(c.SourceDir) }

// ViewsPath returns the absolute page root used for discovery.
func (c *Config) ViewsPath() string { return c.Resolve(c.ViewsDir) }

// OutputPath returns the absolute bundler output directory.
func (c *Config) OutputPath() string { return c.Resolve(c.OutputDir) }

// NodeModulesPath returns the package directory loaders are resolved from.
func (c *Config) NodeModulesPath() string { return c.Resolve("node_modules") }

// EnvFilePaths returns the dotenv files anchored at the project root.
func (c *Config) EnvFilePaths() []string {
	out := make([]string, 0, len(c.EnvFiles))
	for _, f := range c.EnvFiles {
		out = append(out, c.Resolve(f))
	}
	return out
}
