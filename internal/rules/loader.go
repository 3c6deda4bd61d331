// Package rules builds the loader chains and the ordered asset rule set the
// bundler uses to process each file type.
package rules

import (
	"regexp"
	"slices"
	"strings"
)

// Loader identifiers referenced by the rule set.
const (
	StyleLoader      = "style-loader"
	CSSExtractLoader = "mini-css-extract-plugin/dist/loader"
	CSSLoader        = "css-loader"
	PostCSSLoader    = "postcss-loader"
	ResolveURLLoader = "resolve-url-loader"
	SassLoader       = "sass-loader"
	BabelLoader      = "babel-loader"
	SvelteLoader     = "svelte-loader"
	URLLoader        = "url-loader"
	FileLoader       = "file-loader"
)

// ComponentRuntime is the component framework package. Its sources are
// transpiled along with the project sources.
const ComponentRuntime = "svelte"

// InlineLimitBytes is the largest raster image embedded as data.
const InlineLimitBytes = 10000

// LoaderStep is one step of a loader chain.
type LoaderStep struct {
	Loader  string         `json:"loader" yaml:"loader"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Chain is a loader chain in declaration order. The bundler applies it from
// last to first.
type Chain []LoaderStep

// ApplicationOrder returns the chain in the order the bundler runs it.
func (c Chain) ApplicationOrder() Chain {
	out := slices.Clone(c)
	slices.Reverse(out)
	return out
}

// Loaders returns the loader identifiers in declaration order.
func (c Chain) Loaders() []string {
	out := make([]string, 0, len(c))
	for _, s := range c {
		out = append(out, s.Loader)
	}
	return out
}

// Index returns the position of loader in the chain, or -1.
func (c Chain) Index(loader string) int {
	return slices.IndexFunc(c, func(s LoaderStep) bool { return s.Loader == loader })
}

// PackageName returns the package that provides a loader or plugin id:
// "@scope/pkg/sub" is "@scope/pkg", "pkg/dist/x" is "pkg".
func PackageName(id string) string {
	parts := strings.Split(id, "/")
	if strings.HasPrefix(id, "@") && len(parts) > 1 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}

// Pattern is a file matcher. It marshals to its regular expression source.
type Pattern struct {
	re *regexp.Regexp
}

// MustPattern compiles expr and panics when it is invalid.
func MustPattern(expr string) Pattern {
	return Pattern{re: regexp.MustCompile(expr)}
}

// MatchString reports whether path matches.
func (p Pattern) MatchString(path string) bool { return p.re != nil && p.re.MatchString(path) }

func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
