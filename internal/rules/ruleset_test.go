package rules

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
	"git.home.luguber.info/inful/pagegraph/internal/mode"
)

func buildFor(m mode.BuildMode) RuleSet {
	return Build(BuildOptions{
		Settings:       mode.Resolve(m, mode.Options{}),
		SourceDir:      "/p/src",
		NodeModulesDir: "/p/node_modules",
	})
}

func names(rules []Rule) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Name)
	}
	return out
}

func TestBuild_Order(t *testing.T) {
	rs := buildFor(mode.Production)

	require.Equal(t,
		[]string{RuleParser, RuleTranspile, RuleComponent, RuleSass, RuleCSS, RuleImages, RuleAssets},
		names(rs.Rules))
	require.Equal(t,
		[]string{RuleComponent, RuleSass, RuleCSS, RuleImages, RuleAssets},
		names(rs.Exclusive()))
	require.False(t, rs.Rules[0].Exclusive)
	require.Equal(t, map[string]any{"requireEnsure": false}, rs.Rules[0].Parser)
}

func TestRoute(t *testing.T) {
	rs := buildFor(mode.Production)

	tests := []struct {
		name        string
		path        string
		size        int64
		rules       []string
		disposition Disposition
	}{
		{"scss never hits css rule", "/p/src/views/home/app.scss", 100, []string{RuleSass}, Processed},
		{"sass dialect", "/p/src/theme.sass", 100, []string{RuleSass}, Processed},
		{"plain css", "/p/src/app.css", 100, []string{RuleCSS}, Processed},
		{"small png inlined", "/p/src/logo.png", 5000, []string{RuleImages}, Inlined},
		{"png at threshold inlined", "/p/src/logo.png", 10000, []string{RuleImages}, Inlined},
		{"large png emitted", "/p/src/logo.png", 11000, []string{RuleImages}, Emitted},
		{"jpeg emitted", "/p/src/photo.jpeg", 50000, []string{RuleImages}, Emitted},
		{"font to catch-all", "/p/src/fonts/a.woff2", 100, []string{RuleAssets}, Emitted},
		{"component transpiled then compiled", "/p/src/App.svelte", 100, []string{RuleTranspile, RuleComponent}, Processed},
		{"source js transpiled only", "/p/src/views/home/main.js", 100, []string{RuleTranspile}, Processed},
		{"runtime package transpiled", "/p/node_modules/svelte/internal/index.mjs", 100, []string{RuleTranspile}, Processed},
		{"other package js untouched", "/p/node_modules/lodash/index.js", 100, nil, Unhandled},
		{"html not handled", "/p/public/index.html", 100, nil, Unhandled},
		{"json not handled", "/p/src/data.json", 100, nil, Unhandled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rs.Route(tt.path, tt.size)
			require.Equal(t, tt.rules, got.Rules)
			require.Equal(t, tt.disposition, got.Disposition)
		})
	}
}

func TestRoute_IsDeterministic(t *testing.T) {
	rs := buildFor(mode.Development)
	for range 3 {
		require.Equal(t, rs.Route("/p/src/a.scss", 1), rs.Route("/p/src/a.scss", 1))
	}
}

func TestBuild_ComponentHotReloadOnlyInDevelopment(t *testing.T) {
	dev, ok := buildFor(mode.Development).Find(RuleComponent)
	require.True(t, ok)
	require.Equal(t, true, dev.Use[0].Options["hotReload"])
	require.Contains(t, dev.Use[0].Options, "hotOptions")
	require.Equal(t, true, dev.Use[0].Options["emitCss"])

	prod, ok := buildFor(mode.Production).Find(RuleComponent)
	require.True(t, ok)
	require.NotContains(t, prod.Use[0].Options, "hotReload")
	require.NotContains(t, prod.Use[0].Options, "hotOptions")
	require.Equal(t, true, prod.Use[0].Options["emitCss"])
}

func TestBuild_AssetNaming(t *testing.T) {
	prod, _ := buildFor(mode.Production).Find(RuleImages)
	require.Equal(t, "static/assets/[hash:8].[ext]", prod.Use[0].Options["name"])
	require.Equal(t, InlineLimitBytes, prod.Use[0].Options["limit"])

	dev, _ := buildFor(mode.Development).Find(RuleAssets)
	require.Equal(t, "static/assets/[name].[ext]", dev.Use[0].Options["name"])
}

func TestRuleSet_MarshalJSONGroupsExclusiveRules(t *testing.T) {
	data, err := json.Marshal(buildFor(mode.Development))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
	require.Contains(t, decoded[0], "parser")
	require.Equal(t, []any{`\.(?:svelte|m?js)$`}, decoded[1]["test"])

	group, ok := decoded[2]["oneOf"].([]any)
	require.True(t, ok)
	require.Len(t, group, 5)
	last := group[4].(map[string]any)
	require.NotContains(t, last, "test", "catch-all has no test")
	require.Len(t, last["exclude"], 3)
}

func TestRuleSet_Loaders(t *testing.T) {
	got := buildFor(mode.Production).Loaders()
	require.Equal(t, []string{
		BabelLoader, SvelteLoader, CSSExtractLoader, CSSLoader, PostCSSLoader,
		ResolveURLLoader, SassLoader, URLLoader, FileLoader,
	}, got)
}

func TestNodeModulesResolver(t *testing.T) {
	dir := t.TempDir()
	for _, pkg := range []string{"css-loader", "mini-css-extract-plugin", "@babel/preset-env"} {
		pkgDir := filepath.Join(dir, filepath.FromSlash(pkg))
		require.NoError(t, os.MkdirAll(pkgDir, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "package.json"), []byte("{}"), 0o600))
	}
	r := NodeModulesResolver{Dir: dir}

	require.NoError(t, r.Verify([]string{CSSLoader, CSSExtractLoader, "@babel/preset-env"}))

	err := r.Verify([]string{CSSLoader, SassLoader, URLLoader})
	require.Error(t, err)
	require.ErrorIs(t, err, ferrors.ErrUnresolvableLoader)

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	loader, _ := classified.Context().GetString("loader")
	path, _ := classified.Context().GetString("path")
	require.Equal(t, SassLoader, loader, "first missing loader is reported")
	require.Equal(t, filepath.Join(dir, "sass-loader", "package.json"), path)
}
