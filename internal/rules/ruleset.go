package rules

import (
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/pagegraph/internal/logfields"
	"git.home.luguber.info/inful/pagegraph/internal/mode"
)

// Rule routes matching files to a loader chain.
type Rule struct {
	// Name identifies the rule in diagnostics. It is not part of the output.
	Name string `json:"-" yaml:"-"`
	// Test patterns; a file matches when any pattern does. Empty matches all.
	Test []Pattern `json:"test,omitempty" yaml:"test,omitempty"`
	// Include restricts the rule to files under these directories.
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`
	// Exclude patterns; a file matching any of them is skipped.
	Exclude     []Pattern      `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Use         Chain          `json:"use,omitempty" yaml:"use,omitempty"`
	Parser      map[string]any `json:"parser,omitempty" yaml:"parser,omitempty"`
	SideEffects bool           `json:"sideEffects,omitempty" yaml:"sideEffects,omitempty"`
	// Exclusive rules form the first-match-wins group.
	Exclusive bool `json:"-" yaml:"-"`
}

// Matches reports whether path is selected by the rule.
func (r Rule) Matches(path string) bool {
	if len(r.Include) > 0 && !underAny(path, r.Include) {
		return false
	}
	for _, p := range r.Exclude {
		if p.MatchString(path) {
			return false
		}
	}
	if len(r.Test) == 0 {
		return true
	}
	for _, p := range r.Test {
		if p.MatchString(path) {
			return true
		}
	}
	return false
}

func underAny(path string, dirs []string) bool {
	for _, dir := range dirs {
		rel, err := filepath.Rel(dir, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return true
	}
	return false
}

// RuleSet is the ordered rule list. Non-exclusive rules come first and all
// apply; the trailing exclusive rules form one first-match-wins group.
type RuleSet struct {
	Rules []Rule
}

// Exclusive returns the first-match-wins group in order.
func (rs RuleSet) Exclusive() []Rule {
	var out []Rule
	for _, r := range rs.Rules {
		if r.Exclusive {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the rule called name.
func (rs RuleSet) Find(name string) (Rule, bool) {
	for _, r := range rs.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Loaders returns every loader id referenced by the set, first occurrence order.
func (rs RuleSet) Loaders() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rs.Rules {
		for _, id := range r.Use.Loaders() {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

type oneOf struct {
	OneOf []Rule `json:"oneOf" yaml:"oneOf"`
}

// engineRules is the bundler's shape: non-exclusive rules followed by a
// single oneOf group.
func (rs RuleSet) engineRules() []any {
	var out []any
	var group []Rule
	for _, r := range rs.Rules {
		if r.Exclusive {
			group = append(group, r)
			continue
		}
		out = append(out, r)
	}
	if len(group) > 0 {
		out = append(out, oneOf{OneOf: group})
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (rs RuleSet) MarshalJSON() ([]byte, error) { return json.Marshal(rs.engineRules()) }

// MarshalYAML implements yaml.Marshaler.
func (rs RuleSet) MarshalYAML() (any, error) { return rs.engineRules(), nil }

// BuildOptions parameterizes Build.
type BuildOptions struct {
	Settings mode.Settings
	// SourceDir is the absolute project source directory.
	SourceDir string
	// NodeModulesDir is the absolute package directory.
	NodeModulesDir string
}

// Rule names.
const (
	RuleParser    = "parser"
	RuleTranspile = "transpile"
	RuleComponent = "component"
	RuleSass      = "sass"
	RuleCSS       = "css"
	RuleImages    = "images"
	RuleAssets    = "assets"
)

var (
	transpileTest = []Pattern{MustPattern(`\.(?:svelte|m?js)$`)}
	componentTest = []Pattern{MustPattern(`\.svelte$`)}
	sassTest      = []Pattern{MustPattern(`\.(scss|sass)$`)}
	cssTest       = []Pattern{MustPattern(`\.css$`)}
	imageTest     = []Pattern{
		MustPattern(`\.bmp$`),
		MustPattern(`\.gif$`),
		MustPattern(`\.jpe?g$`),
		MustPattern(`\.png$`),
	}
	assetExclude = []Pattern{
		MustPattern(`\.(js|mjs|svelte)$`),
		MustPattern(`\.html$`),
		MustPattern(`\.json$`),
	}
)

// AssetName is the emitted file name template for images and other assets.
func AssetName(hashing bool) string {
	if hashing {
		return "static/assets/[hash:8].[ext]"
	}
	return "static/assets/[name].[ext]"
}

// Build assembles the rule set. Order: the parser pass-through, the
// transpile rule, then the exclusive group with the catch-all last.
func Build(opts BuildOptions) RuleSet {
	s := opts.Settings
	assetName := AssetName(s.FilenameHashing)

	rs := RuleSet{Rules: []Rule{
		{
			Name:   RuleParser,
			Parser: map[string]any{"requireEnsure": false},
		},
		{
			Name:    RuleTranspile,
			Test:    transpileTest,
			Include: []string{opts.SourceDir, filepath.Join(opts.NodeModulesDir, ComponentRuntime)},
			Use: Chain{{
				Loader: BabelLoader,
				Options: map[string]any{
					"sourceType": "unambiguous",
					"presets":    []string{"@babel/preset-env"},
					"plugins":    []string{"@babel/plugin-transform-runtime"},
				},
			}},
		},
		{
			Name:      RuleComponent,
			Test:      componentTest,
			Use:       Chain{{Loader: SvelteLoader, Options: componentOptions(s)}},
			Exclusive: true,
		},
		{
			Name:        RuleSass,
			Test:        sassTest,
			Use:         StyleChain(s, opts.SourceDir, Sass),
			SideEffects: true,
			Exclusive:   true,
		},
		{
			Name:        RuleCSS,
			Test:        cssTest,
			Use:         StyleChain(s, opts.SourceDir, NoPreprocessor),
			SideEffects: true,
			Exclusive:   true,
		},
		{
			Name: RuleImages,
			Test: imageTest,
			Use: Chain{{
				Loader:  URLLoader,
				Options: map[string]any{"limit": InlineLimitBytes, "name": assetName},
			}},
			Exclusive: true,
		},
		{
			Name:      RuleAssets,
			Exclude:   assetExclude,
			Use:       Chain{{Loader: FileLoader, Options: map[string]any{"name": assetName}}},
			Exclusive: true,
		},
	}}

	slog.Debug("Built asset rules", logfields.Mode(string(s.Mode)), logfields.Count(len(rs.Rules)))
	return rs
}

func componentOptions(s mode.Settings) map[string]any {
	opts := map[string]any{
		"emitCss": true,
		"preprocess": map[string]any{
			"scss":    true,
			"postcss": map[string]any{"plugins": []string{"autoprefixer"}},
		},
	}
	if !s.IsProduction() {
		opts["hotReload"] = true
		opts["hotOptions"] = map[string]any{"noPreserveState": false, "optimistic": true}
	}
	return opts
}
