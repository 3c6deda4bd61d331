package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pagegraph/internal/mode"
)

func TestStyleChain_DeclaredOrder(t *testing.T) {
	tests := []struct {
		name string
		mode mode.BuildMode
		pre  Preprocessor
		want []string
	}{
		{"dev css", mode.Development, NoPreprocessor, []string{StyleLoader, CSSLoader, PostCSSLoader}},
		{"prod css", mode.Production, NoPreprocessor, []string{CSSExtractLoader, CSSLoader, PostCSSLoader}},
		{"dev sass", mode.Development, Sass, []string{StyleLoader, CSSLoader, PostCSSLoader, ResolveURLLoader, SassLoader}},
		{"prod sass", mode.Production, Sass, []string{CSSExtractLoader, CSSLoader, PostCSSLoader, ResolveURLLoader, SassLoader}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := StyleChain(mode.Resolve(tt.mode, mode.Options{}), "/p/src", tt.pre)
			require.Equal(t, tt.want, chain.Loaders())
		})
	}
}

func TestStyleChain_ApplicationOrder(t *testing.T) {
	chain := StyleChain(mode.Resolve(mode.Production, mode.Options{}), "/p/src", Sass)

	// Preprocess, rewrite urls, post-process, ingest, then extract.
	require.Equal(t,
		[]string{SassLoader, ResolveURLLoader, PostCSSLoader, CSSLoader, CSSExtractLoader},
		chain.ApplicationOrder().Loaders())
	require.Equal(t, SassLoader, chain[len(chain)-1].Loader, "declaration order must be untouched")
}

func TestStyleChain_ImportLoadersCountsFollowingSteps(t *testing.T) {
	s := mode.Resolve(mode.Development, mode.Options{})

	for _, pre := range []Preprocessor{NoPreprocessor, Sass} {
		chain := StyleChain(s, "/p/src", pre)
		idx := chain.Index(CSSLoader)
		require.GreaterOrEqual(t, idx, 0)
		require.Equal(t, len(chain)-idx-1, chain[idx].Options["importLoaders"])
	}
	require.Equal(t, 1, StyleChain(s, "/p/src", NoPreprocessor)[1].Options["importLoaders"])
	require.Equal(t, 3, StyleChain(s, "/p/src", Sass)[1].Options["importLoaders"])
}

func TestStyleChain_SourceMapsAttachedUniformly(t *testing.T) {
	for _, tc := range []struct {
		settings mode.Settings
		want     bool
	}{
		{mode.Resolve(mode.Development, mode.Options{}), true},
		{mode.Resolve(mode.Production, mode.Options{}), false},
		{mode.Resolve(mode.Production, mode.Options{ProductionSourceMaps: true}), true},
	} {
		chain := StyleChain(tc.settings, "/p/src", Sass)
		for _, step := range chain[1:] {
			require.Equal(t, tc.want, step.Options["sourceMap"], step.Loader)
		}
	}
}

func TestStyleChain_ExtractHeadCarriesPublicPath(t *testing.T) {
	chain := StyleChain(mode.Resolve(mode.Production, mode.Options{}), "/p/src", NoPreprocessor)
	require.Equal(t, "../../", chain[0].Options["publicPath"])

	dev := StyleChain(mode.Resolve(mode.Development, mode.Options{}), "/p/src", NoPreprocessor)
	require.Nil(t, dev[0].Options)
}

func TestPackageName(t *testing.T) {
	require.Equal(t, "css-loader", PackageName("css-loader"))
	require.Equal(t, "mini-css-extract-plugin", PackageName(CSSExtractLoader))
	require.Equal(t, "@babel/preset-env", PackageName("@babel/preset-env"))
	require.Equal(t, "@scope/pkg", PackageName("@scope/pkg/dist/loader"))
}
