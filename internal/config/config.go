package config

// DefaultFileName is looked up in the working directory when no --config is given.
const DefaultFileName = "pagegraph.yaml"

// Config represents the pagegraph configuration file.
type Config struct {
	// ProjectRoot anchors every relative path below. Relative roots are resolved
	// against the directory containing the config file.
	ProjectRoot string `yaml:"project_root"`
	SourceDir   string `yaml:"source_dir"`
	ViewsDir    string `yaml:"views_dir"`
	// EntryExtensions are tried in order for <views>/<page>/main.<ext>.
	EntryExtensions []string `yaml:"entry_extensions,omitempty"`
	DefaultTemplate string   `yaml:"default_template"`
	OutputDir       string   `yaml:"output_dir"`
	ContentBase     string   `yaml:"content_base"`

	// Mode is the lowest-precedence mode token (after --mode and NODE_ENV).
	Mode                 string `yaml:"mode,omitempty"`
	ProductionSourceMaps bool   `yaml:"production_source_maps"`

	// Pages, when non-empty, replaces filesystem discovery entirely.
	Pages []Page `yaml:"pages,omitempty"`

	EnvFiles      []string `yaml:"env_files,omitempty"`
	StampRevision bool     `yaml:"stamp_revision"`
	VerifyLoaders bool     `yaml:"verify_loaders"`

	DevServer DevServerConfig `yaml:"dev_server"`
}

// Page is one explicitly authored page record.
type Page struct {
	Name     string `yaml:"name"`
	Entry    string `yaml:"entry"`
	Template string `yaml:"template,omitempty"`
	Filename string `yaml:"filename,omitempty"`
}

// DevServerConfig holds pass-through development server parameters.
type DevServerConfig struct {
	// Host overrides the discovered non-loopback address.
	Host string `yaml:"host,omitempty"`
	Open *bool  `yaml:"open,omitempty"`
}

// OpenOnStart reports whether the dev server should open a browser (default true).
func (d DevServerConfig) OpenOnStart() bool {
	return d.Open == nil || *d.Open
}
