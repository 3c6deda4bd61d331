package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
)

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	open := true
	example := Config{
		ProjectRoot:     ".",
		SourceDir:       DefaultSourceDir,
		ViewsDir:        DefaultViewsDir,
		EntryExtensions: DefaultEntryExtensions,
		DefaultTemplate: DefaultTemplate,
		OutputDir:       DefaultOutputDir,
		ContentBase:     DefaultContentBase,
		EnvFiles:        DefaultEnvFiles,
		DevServer:       DevServerConfig{Open: &open},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	header := "# pagegraph configuration\n" +
		"# Leave `pages` empty to discover one page per directory under views_dir.\n" +
		"# Example explicit list:\n" +
		"#   pages:\n" +
		"#     - name: home\n" +
		"#       entry: src/views/home/main.js\n"

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create config directory").
				Fatal().
				WithContext("path", dir).
				Build()
		}
	}
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}
	return nil
}
