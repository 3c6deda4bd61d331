// Package htmlplugin derives one HTML generation spec per page.
package htmlplugin

import (
	"git.home.luguber.info/inful/pagegraph/internal/mode"
	"git.home.luguber.info/inful/pagegraph/internal/pages"
)

// Minify is the HTML minification policy applied in production.
type Minify struct {
	RemoveComments                bool `json:"removeComments" yaml:"removeComments"`
	CollapseWhitespace            bool `json:"collapseWhitespace" yaml:"collapseWhitespace"`
	RemoveRedundantAttributes     bool `json:"removeRedundantAttributes" yaml:"removeRedundantAttributes"`
	UseShortDoctype               bool `json:"useShortDoctype" yaml:"useShortDoctype"`
	RemoveEmptyAttributes         bool `json:"removeEmptyAttributes" yaml:"removeEmptyAttributes"`
	RemoveStyleLinkTypeAttributes bool `json:"removeStyleLinkTypeAttributes" yaml:"removeStyleLinkTypeAttributes"`
	KeepClosingSlash              bool `json:"keepClosingSlash" yaml:"keepClosingSlash"`
	MinifyJS                      bool `json:"minifyJS" yaml:"minifyJS"`
	MinifyCSS                     bool `json:"minifyCSS" yaml:"minifyCSS"`
	MinifyURLs                    bool `json:"minifyURLs" yaml:"minifyURLs"`
}

// ProductionMinify returns the fixed production policy.
func ProductionMinify() *Minify {
	return &Minify{
		RemoveComments:                true,
		CollapseWhitespace:            true,
		RemoveRedundantAttributes:     true,
		UseShortDoctype:               true,
		RemoveEmptyAttributes:         true,
		RemoveStyleLinkTypeAttributes: true,
		KeepClosingSlash:              true,
		MinifyJS:                      true,
		MinifyCSS:                     true,
		MinifyURLs:                    true,
	}
}

// Spec configures one generated HTML file.
type Spec struct {
	Inject   bool   `json:"inject" yaml:"inject"`
	Filename string `json:"filename" yaml:"filename"`
	Template string `json:"template" yaml:"template"`
	// Chunks holds only the page's own entry name.
	Chunks []string `json:"chunks" yaml:"chunks"`
	Minify *Minify  `json:"minify,omitempty" yaml:"minify,omitempty"`
}

// Generate returns one spec per page, in page order. Production specs carry
// the minification policy; development specs carry none.
func Generate(descs []pages.Descriptor, settings mode.Settings) []Spec {
	specs := make([]Spec, 0, len(descs))
	for _, d := range descs {
		spec := Spec{
			Inject:   true,
			Filename: d.Filename,
			Template: d.Template,
			Chunks:   []string{d.Name},
		}
		if settings.IsProduction() {
			spec.Minify = ProductionMinify()
		}
		specs = append(specs, spec)
	}
	return specs
}
