package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
)

// Load reads, expands, defaults and validates the configuration at configPath.
func Load(configPath string) (*Config, error) {
	// #nosec G304 - path is supplied by the operator
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ferrors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	if !filepath.IsAbs(cfg.ProjectRoot) {
		cfg.ProjectRoot = filepath.Join(filepath.Dir(configPath), cfg.ProjectRoot)
	}
	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configPath when set. With an empty path the default file
// is used if present in the working directory, otherwise Default() applies.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath != "" {
		return Load(configPath)
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return Load(DefaultFileName)
	}
	return Default()
}

// Default returns a configuration rooted at the working directory.
func Default() (*Config, error) {
	cfg := &Config{ProjectRoot: "."}
	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML after ${VAR} expansion. Unknown keys are rejected so that
// typos fail fast instead of silently falling back to defaults.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func finalize(cfg *Config) error {
	abs, err := filepath.Abs(cfg.ProjectRoot)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "failed to resolve project root").
			Fatal().
			WithContext("path", cfg.ProjectRoot).
			Build()
	}
	cfg.ProjectRoot = abs
	applyDefaults(cfg)
	return Validate(cfg)
}
