package graph

import (
	"encoding/json"

	"git.home.luguber.info/inful/pagegraph/internal/env"
	"git.home.luguber.info/inful/pagegraph/internal/mode"
	"git.home.luguber.info/inful/pagegraph/internal/pages"
	"git.home.luguber.info/inful/pagegraph/internal/rules"
)

// BuildGraph is the root output value.
type BuildGraph struct {
	Mode         mode.BuildMode    `json:"mode" yaml:"mode"`
	Context      string            `json:"context" yaml:"context"`
	Entry        pages.Entries     `json:"entry" yaml:"entry"`
	Output       Output            `json:"output" yaml:"output"`
	DevServer    DevServer         `json:"devServer" yaml:"devServer"`
	Bail         bool              `json:"bail" yaml:"bail"`
	Resolve      Resolve           `json:"resolve" yaml:"resolve"`
	Module       Module            `json:"module" yaml:"module"`
	Plugins      []Plugin          `json:"plugins" yaml:"plugins"`
	Optimization Optimization      `json:"optimization" yaml:"optimization"`
	Devtool      Devtool           `json:"devtool" yaml:"devtool"`
	Node         map[string]string `json:"node" yaml:"node"`
}

// Output holds the output directory and script naming templates.
type Output struct {
	Path          string `json:"path" yaml:"path"`
	PathInfo      bool   `json:"pathinfo" yaml:"pathinfo"`
	Filename      string `json:"filename" yaml:"filename"`
	ChunkFilename string `json:"chunkFilename" yaml:"chunkFilename"`
}

// DevServer holds pass-through development server parameters.
type DevServer struct {
	Host             string `json:"host" yaml:"host"`
	ContentBase      string `json:"contentBase" yaml:"contentBase"`
	WatchContentBase bool   `json:"watchContentBase" yaml:"watchContentBase"`
	Open             bool   `json:"open" yaml:"open"`
	Stats            string `json:"stats" yaml:"stats"`
	PublicPath       string `json:"publicPath" yaml:"publicPath"`
}

// Resolve configures module resolution.
type Resolve struct {
	Modules    []string          `json:"modules" yaml:"modules"`
	Extensions []string          `json:"extensions" yaml:"extensions"`
	Alias      map[string]string `json:"alias" yaml:"alias"`
	MainFields []string          `json:"mainFields" yaml:"mainFields"`
}

// Module holds the rule set.
type Module struct {
	StrictExportPresence bool          `json:"strictExportPresence" yaml:"strictExportPresence"`
	Rules                rules.RuleSet `json:"rules" yaml:"rules"`
}

// Plugin is a plugin instantiation: the constructor, the package that
// provides it, and its options.
type Plugin struct {
	Name    string `json:"name" yaml:"name"`
	Package string `json:"package" yaml:"package"`
	Options any    `json:"options,omitempty" yaml:"options,omitempty"`
}

// Optimization holds minification and chunk splitting parameters.
type Optimization struct {
	Minimize    bool        `json:"minimize" yaml:"minimize"`
	Minimizer   []Plugin    `json:"minimizer" yaml:"minimizer"`
	SplitChunks SplitChunks `json:"splitChunks" yaml:"splitChunks"`
}

// SplitChunks is always all chunks with no custom naming.
type SplitChunks struct {
	Chunks string `json:"chunks" yaml:"chunks"`
	Name   bool   `json:"name" yaml:"name"`
}

// Devtool is the source-map devtool. Empty serializes as false.
type Devtool string

// MarshalJSON implements json.Marshaler.
func (d Devtool) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte("false"), nil
	}
	return json.Marshal(string(d))
}

// MarshalYAML implements yaml.Marshaler.
func (d Devtool) MarshalYAML() (any, error) {
	if d == "" {
		return false, nil
	}
	return string(d), nil
}

// DefinePayload is the DefinePlugin option carrying the environment.
type DefinePayload struct {
	ProcessEnv env.Map `json:"process.env" yaml:"process.env"`
}
