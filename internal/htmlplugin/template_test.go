package htmlplugin

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want TemplateInfo
	}{
		{"full document", "<!DOCTYPE html><html><head><title>x</title></head><body><div id=app></div></body></html>", TemplateInfo{HasHead: true, HasBody: true}},
		{"fragment", "<div id=app></div>", TemplateInfo{}},
		{"head only", "<html><HEAD></HEAD><div></div></html>", TemplateInfo{HasHead: true}},
		{"comment mentioning body", "<!-- <body> --><head></head>", TemplateInfo{HasHead: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inspect(strings.NewReader(tt.doc))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyTemplates(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "public"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "public", "index.html"),
		[]byte("<html><head></head><body></body></html>"), 0o600))

	specs := []Spec{
		{Template: "public/index.html", Chunks: []string{"home"}},
		{Template: "public/index.html", Chunks: []string{"about"}},
	}
	require.NoError(t, VerifyTemplates(root, specs))

	specs = append(specs, Spec{Template: "public/admin.html", Chunks: []string{"admin"}})
	err := VerifyTemplates(root, specs)
	require.Error(t, err)
	require.True(t, errors.Is(err, ferrors.ErrMissingTemplate))

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	page, _ := classified.Context().GetString("page")
	path, _ := classified.Context().GetString("path")
	require.Equal(t, "admin", page)
	require.Equal(t, filepath.Join(root, "public", "admin.html"), path)
}

func TestVerifyTemplates_AbsolutePath(t *testing.T) {
	tpl := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(tpl, []byte("<p>hi</p>"), 0o600))

	require.NoError(t, VerifyTemplates("/does/not/matter", []Spec{{Template: tpl, Chunks: []string{"home"}}}))
}
