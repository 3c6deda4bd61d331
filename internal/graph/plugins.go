package graph

import (
	"git.home.luguber.info/inful/pagegraph/internal/env"
	"git.home.luguber.info/inful/pagegraph/internal/htmlplugin"
	"git.home.luguber.info/inful/pagegraph/internal/mode"
)

// Plugin constructors and the packages providing them.
const (
	PluginCSSExtract = "MiniCssExtractPlugin"
	PluginClean      = "CleanWebpackPlugin"
	PluginHTML       = "HtmlWebpackPlugin"
	PluginDefine     = "DefinePlugin"
	PluginCSSAssets  = "OptimizeCSSAssetsPlugin"
	PluginTerser     = "TerserPlugin"

	pkgCSSExtract = "mini-css-extract-plugin"
	pkgClean      = "clean-webpack-plugin"
	pkgHTML       = "html-webpack-plugin"
	pkgBundler    = "webpack"
	pkgCSSAssets  = "optimize-css-assets-webpack-plugin"
	pkgTerser     = "terser-webpack-plugin"
)

// buildPlugins returns the plugin list in its fixed order: stylesheet
// extraction, output cleanup (production only), one HTML plugin per page, and
// the environment definition.
func buildPlugins(s mode.Settings, specs []htmlplugin.Spec, envMap env.Map) []Plugin {
	plugins := make([]Plugin, 0, len(specs)+3)
	plugins = append(plugins, Plugin{
		Name:    PluginCSSExtract,
		Package: pkgCSSExtract,
		Options: map[string]any{"filename": styleFile, "chunkFilename": styleChunk},
	})

	if s.IsProduction() {
		plugins = append(plugins, Plugin{Name: PluginClean, Package: pkgClean})
	}

	for _, spec := range specs {
		plugins = append(plugins, Plugin{Name: PluginHTML, Package: pkgHTML, Options: spec})
	}

	if envMap == nil {
		envMap = env.Map{}
	}
	return append(plugins, Plugin{
		Name:    PluginDefine,
		Package: pkgBundler,
		Options: DefinePayload{ProcessEnv: envMap},
	})
}

// buildOptimization returns the minimizer chain and chunk policy. The
// minimizers are always listed; Minimize gates whether the bundler runs them.
func buildOptimization(s mode.Settings) Optimization {
	maps := s.EmitSourceMaps

	var cssMap any = false
	if maps {
		cssMap = map[string]any{"inline": false, "annotation": true}
	}

	return Optimization{
		Minimize: s.Optimize,
		Minimizer: []Plugin{
			{
				Name:    PluginCSSAssets,
				Package: pkgCSSAssets,
				Options: map[string]any{
					"cssProcessorOptions": map[string]any{"map": cssMap},
					"cssProcessorPluginOptions": map[string]any{
						"preset": []any{"default", map[string]any{
							"discardComments":  map[string]any{"removeAll": !maps},
							"minifyFontValues": map[string]any{"removeQuotes": false},
						}},
					},
				},
			},
			{
				Name:    PluginTerser,
				Package: pkgTerser,
				Options: map[string]any{
					"sourceMap":       maps,
					"extractComments": false,
					"terserOptions": map[string]any{
						"parse":    map[string]any{"ecma": 8},
						"compress": map[string]any{"ecma": 5, "warnings": false, "comparisons": false, "inline": 2},
						"mangle":   map[string]any{"safari10": true},
						"output":   map[string]any{"ecma": 5, "comments": false, "ascii_only": true},
					},
				},
			},
		},
		SplitChunks: SplitChunks{Chunks: "all", Name: false},
	}
}

// packages lists every plugin package referenced by plugins, in order.
func packages(plugins ...[]Plugin) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range plugins {
		for _, p := range list {
			if p.Package != "" && !seen[p.Package] {
				seen[p.Package] = true
				out = append(out, p.Package)
			}
		}
	}
	return out
}
