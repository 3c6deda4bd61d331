package config

import (
	"path/filepath"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
)

// Validate checks the structural invariants of a defaulted configuration.
// Page records are validated at discovery time, where the page index and name
// are available for the error context.
func Validate(cfg *Config) error {
	if cfg.ProjectRoot == "" {
		return ferrors.ConfigError("project_root is required").Build()
	}
	for i, ext := range cfg.EntryExtensions {
		if ext == "" {
			return ferrors.ConfigError("entry_extensions contains an empty extension").
				WithContext("index", i).
				Build()
		}
	}
	for i, f := range cfg.EnvFiles {
		if f == "" {
			return ferrors.ConfigError("env_files contains an empty path").
				WithContext("index", i).
				Build()
		}
	}
	if filepath.Clean(cfg.SourcePath()) == filepath.Clean(cfg.OutputPath()) {
		return ferrors.ConfigError("output_dir must differ from source_dir").
			WithContext("path", cfg.OutputDir).
			Build()
	}
	return nil
}
