package rules

import (
	"git.home.luguber.info/inful/pagegraph/internal/mode"
)

// Preprocessor selects the stylesheet dialect compiler, if any.
type Preprocessor string

const (
	NoPreprocessor Preprocessor = ""
	Sass           Preprocessor = SassLoader
)

// postcssPlugins is the fixed post-processing pipeline.
func postcssPlugins() []any {
	return []any{
		[]any{"postcss-flexbugs-fixes"},
		[]any{"postcss-preset-env", map[string]any{
			"autoprefixer": map[string]any{"flexbox": "no-2009"},
			"stage":        3,
		}},
		[]any{"postcss-normalize"},
	}
}

// StyleChain assembles the stylesheet chain for settings and pre. Declared
// order is head, css-loader, postcss-loader, then resolve-url-loader and the
// preprocessor when pre is set. The head step injects at runtime or extracts
// to a file depending on the settings.
func StyleChain(settings mode.Settings, sourceDir string, pre Preprocessor) Chain {
	sourceMap := settings.EmitSourceMaps

	var head LoaderStep
	switch settings.StyleInjection {
	case mode.ExtractToFile:
		head = LoaderStep{Loader: CSSExtractLoader, Options: map[string]any{"publicPath": settings.PublicPath}}
	default:
		head = LoaderStep{Loader: StyleLoader}
	}

	tail := Chain{{
		Loader: PostCSSLoader,
		Options: map[string]any{
			"postcssOptions": map[string]any{"plugins": postcssPlugins()},
			"sourceMap":      sourceMap,
		},
	}}
	if pre != NoPreprocessor {
		tail = append(tail,
			LoaderStep{Loader: ResolveURLLoader, Options: map[string]any{"sourceMap": sourceMap, "root": sourceDir}},
			LoaderStep{Loader: string(pre), Options: map[string]any{"sourceMap": sourceMap}},
		)
	}

	ingest := LoaderStep{
		Loader:  CSSLoader,
		Options: map[string]any{"importLoaders": len(tail), "sourceMap": sourceMap},
	}

	chain := make(Chain, 0, 2+len(tail))
	chain = append(chain, head, ingest)
	return append(chain, tail...)
}
