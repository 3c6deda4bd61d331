// Package mode resolves the single build-mode flag into the frozen set of
// mode-dependent parameters every other component reads.
package mode

import (
	"log/slog"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
	"git.home.luguber.info/inful/pagegraph/internal/foundation/normalization"
	"git.home.luguber.info/inful/pagegraph/internal/logfields"
)

// BuildMode is the closed set of build modes.
type BuildMode string

const (
	Development BuildMode = "development"
	Production  BuildMode = "production"
)

// StyleInjection selects how stylesheets reach the page.
type StyleInjection string

const (
	// InjectAtRuntime adds <style> tags from the bundle at runtime.
	InjectAtRuntime StyleInjection = "runtime-inject"
	// ExtractToFile writes stylesheets as separate hashed files.
	ExtractToFile StyleInjection = "extract-to-file"
)

var modes = normalization.NewNormalizer(map[string]BuildMode{
	"development": Development,
	"dev":         Development,
	"production":  Production,
	"prod":        Production,
}, Development)

// AcceptedTokens lists the accepted mode tokens, sorted.
func AcceptedTokens() []string { return modes.ValidKeys() }

// Parse maps a mode token onto a BuildMode. An empty token is development.
// Unrecognized tokens fail with ErrInvalidMode unless lenient is set, in which
// case they fall back to development with a warning.
func Parse(token string, lenient bool) (BuildMode, error) {
	m, ok := modes.Lookup(token)
	if ok {
		return m, nil
	}
	if !lenient {
		return "", ferrors.InvalidMode(token, AcceptedTokens())
	}
	slog.Warn("Unrecognized build mode, falling back to development", logfields.Mode(token))
	return modes.Default(), nil
}

// Options carries the configuration inputs that parameterize Settings.
type Options struct {
	// ProductionSourceMaps enables source maps in production builds.
	ProductionSourceMaps bool
}

// Settings is the frozen result of mode resolution. It is a value type: every
// component receives its own identical copy.
type Settings struct {
	Mode            BuildMode      `json:"mode" yaml:"mode"`
	Optimize        bool           `json:"optimize" yaml:"optimize"`
	EmitSourceMaps  bool           `json:"emitSourceMaps" yaml:"emitSourceMaps"`
	StyleInjection  StyleInjection `json:"styleInjection" yaml:"styleInjection"`
	FilenameHashing bool           `json:"filenameHashing" yaml:"filenameHashing"`
	// PublicPath is the extracted-stylesheet public path in production and the
	// dev-server public path in development.
	PublicPath string `json:"publicPath" yaml:"publicPath"`
	Bail       bool   `json:"bail" yaml:"bail"`
	PathInfo   bool   `json:"pathinfo" yaml:"pathinfo"`
	// Devtool is the source-map devtool name, empty when maps are not emitted
	// as separate files.
	Devtool string `json:"devtool" yaml:"devtool"`
}

// Resolve derives Settings for m. Each mode is one explicit branch.
func Resolve(m BuildMode, opts Options) Settings {
	switch m {
	case Production:
		s := Settings{
			Mode:            Production,
			Optimize:        true,
			EmitSourceMaps:  opts.ProductionSourceMaps,
			StyleInjection:  ExtractToFile,
			FilenameHashing: true,
			PublicPath:      "../../",
			Bail:            true,
		}
		if opts.ProductionSourceMaps {
			s.Devtool = "source-map"
		}
		return s
	default:
		return Settings{
			Mode:           Development,
			EmitSourceMaps: true,
			StyleInjection: InjectAtRuntime,
			PublicPath:     "/",
			PathInfo:       true,
		}
	}
}

// IsProduction reports whether s was resolved for production.
func (s Settings) IsProduction() bool { return s.Mode == Production }

// SelectToken applies the mode token precedence: explicit flag, then NODE_ENV,
// then the config file, then development.
func SelectToken(flag, nodeEnv, configured string) string {
	for _, t := range []string{flag, nodeEnv, configured} {
		if t != "" {
			return t
		}
	}
	return string(Development)
}
