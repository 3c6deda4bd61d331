package htmlplugin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pagegraph/internal/mode"
	"git.home.luguber.info/inful/pagegraph/internal/pages"
)

var descs = []pages.Descriptor{
	{Name: "home", Entry: "/p/src/views/home/main.js", Template: "public/index.html", Filename: "home/index.html"},
	{Name: "admin", Entry: "/p/src/views/admin/main.js", Template: "public/admin.html", Filename: "admin/index.html"},
	{Name: "about", Entry: "/p/src/views/about/main.js", Template: "public/index.html", Filename: "about/index.html"},
}

func TestGenerate_OnePerPageInOrder(t *testing.T) {
	specs := Generate(descs, mode.Resolve(mode.Development, mode.Options{}))

	require.Len(t, specs, len(descs))
	for i, spec := range specs {
		require.Equal(t, []string{descs[i].Name}, spec.Chunks, "injects only its own entry")
		require.Equal(t, descs[i].Filename, spec.Filename)
		require.Equal(t, descs[i].Template, spec.Template)
		require.True(t, spec.Inject)
	}
}

func TestGenerate_MinifyOnlyInProduction(t *testing.T) {
	for _, spec := range Generate(descs, mode.Resolve(mode.Development, mode.Options{})) {
		require.Nil(t, spec.Minify)
	}
	for _, spec := range Generate(descs, mode.Resolve(mode.Production, mode.Options{})) {
		require.Equal(t, ProductionMinify(), spec.Minify)
		require.True(t, spec.Minify.KeepClosingSlash)
		require.True(t, spec.Minify.RemoveComments)
	}
}

func TestGenerate_SpecsDoNotShareMinify(t *testing.T) {
	specs := Generate(descs[:2], mode.Resolve(mode.Production, mode.Options{}))
	specs[0].Minify.MinifyJS = false
	require.True(t, specs[1].Minify.MinifyJS)
}

func TestGenerate_Empty(t *testing.T) {
	require.Empty(t, Generate(nil, mode.Resolve(mode.Production, mode.Options{})))
}
