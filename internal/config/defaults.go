package config

import "strings"

// Defaults mirror the conventional multi-page layout:
//
//	src/views/<page>/main.js
//	public/index.html
const (
	DefaultSourceDir   = "src"
	DefaultViewsDir    = "src/views"
	DefaultTemplate    = "public/index.html"
	DefaultOutputDir   = "dist"
	DefaultContentBase = "public"
)

// DefaultEntryExtensions are tried in order when locating a page entry module.
var DefaultEntryExtensions = []string{"js", "mjs"}

// DefaultEnvFiles are the dotenv files merged into the environment snapshot.
var DefaultEnvFiles = []string{".env", ".env.local"}

func applyDefaults(cfg *Config) {
	if cfg.SourceDir == "" {
		cfg.SourceDir = DefaultSourceDir
	}
	if cfg.ViewsDir == "" {
		cfg.ViewsDir = DefaultViewsDir
	}
	if len(cfg.EntryExtensions) == 0 {
		cfg.EntryExtensions = append([]string(nil), DefaultEntryExtensions...)
	}
	for i, ext := range cfg.EntryExtensions {
		cfg.EntryExtensions[i] = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	}
	if cfg.DefaultTemplate == "" {
		cfg.DefaultTemplate = DefaultTemplate
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.ContentBase == "" {
		cfg.ContentBase = DefaultContentBase
	}
	// An explicit empty list disables dotenv loading.
	if cfg.EnvFiles == nil {
		cfg.EnvFiles = append([]string(nil), DefaultEnvFiles...)
	}
}
