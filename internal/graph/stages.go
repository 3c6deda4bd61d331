package graph

import (
	"path/filepath"

	"git.home.luguber.info/inful/pagegraph/internal/config"
	"git.home.luguber.info/inful/pagegraph/internal/env"
	"git.home.luguber.info/inful/pagegraph/internal/htmlplugin"
	"git.home.luguber.info/inful/pagegraph/internal/mode"
	"git.home.luguber.info/inful/pagegraph/internal/pages"
	"git.home.luguber.info/inful/pagegraph/internal/rules"
)

// StageName identifies a compile stage.
type StageName string

// Stages in execution order.
const (
	StageResolveMode    StageName = "resolve_mode"
	StageSerializeEnv   StageName = "serialize_env"
	StageDiscoverPages  StageName = "discover_pages"
	StageResolveEntries StageName = "resolve_entries"
	StageBuildRules     StageName = "build_rules"
	StageGenerateHTML   StageName = "generate_html"
	StageVerifyLoaders  StageName = "verify_loaders"
	StageAssemble       StageName = "assemble"
)

// stageFunc runs one stage. skipped reports that the stage had nothing to do.
type stageFunc func(st *compileState) (skipped bool, err error)

type stageDef struct {
	name StageName
	fn   stageFunc
}

func pipeline() []stageDef {
	return []stageDef{
		{StageResolveMode, stageResolveMode},
		{StageSerializeEnv, stageSerializeEnv},
		{StageDiscoverPages, stageDiscoverPages},
		{StageResolveEntries, stageResolveEntries},
		{StageBuildRules, stageBuildRules},
		{StageGenerateHTML, stageGenerateHTML},
		{StageVerifyLoaders, stageVerifyLoaders},
		{StageAssemble, stageAssemble},
	}
}

// compileState carries component outputs between stages.
type compileState struct {
	in   Input
	cfg  *config.Config
	host string

	settings mode.Settings
	envMap   env.Map
	pages    []pages.Descriptor
	entries  pages.Entries
	rules    rules.RuleSet
	html     []htmlplugin.Spec
	graph    *BuildGraph
}

func stageResolveMode(st *compileState) (bool, error) {
	m, err := mode.Parse(st.in.ModeToken, st.in.LenientMode)
	if err != nil {
		return false, err
	}
	st.settings = mode.Resolve(m, mode.Options{ProductionSourceMaps: st.cfg.ProductionSourceMaps})
	return false, nil
}

func stageSerializeEnv(st *compileState) (bool, error) {
	st.envMap = env.Serialize(st.in.Environment)
	return false, nil
}

func stageDiscoverPages(st *compileState) (bool, error) {
	explicit := make([]pages.Descriptor, 0, len(st.cfg.Pages))
	for _, p := range st.cfg.Pages {
		explicit = append(explicit, pages.Descriptor{Name: p.Name, Entry: p.Entry, Template: p.Template, Filename: p.Filename})
	}
	found, err := pages.Discover(pages.Options{
		Explicit:        explicit,
		Root:            st.cfg.ViewsPath(),
		Extensions:      st.cfg.EntryExtensions,
		DefaultTemplate: st.cfg.DefaultTemplate,
	})
	if err != nil {
		return false, err
	}
	st.pages = found
	return false, nil
}

func stageResolveEntries(st *compileState) (bool, error) {
	entries, err := pages.ResolveEntries(st.pages)
	if err != nil {
		return false, err
	}
	st.entries = entries
	return false, nil
}

func stageBuildRules(st *compileState) (bool, error) {
	st.rules = rules.Build(rules.BuildOptions{
		Settings:       st.settings,
		SourceDir:      st.cfg.SourcePath(),
		NodeModulesDir: st.cfg.NodeModulesPath(),
	})
	return false, nil
}

func stageGenerateHTML(st *compileState) (bool, error) {
	specs := htmlplugin.Generate(st.pages, st.settings)
	if err := htmlplugin.VerifyTemplates(st.cfg.ProjectRoot, specs); err != nil {
		return false, err
	}
	st.html = specs
	return false, nil
}

func stageVerifyLoaders(st *compileState) (bool, error) {
	if !st.in.VerifyLoaders && !st.cfg.VerifyLoaders {
		return true, nil
	}
	resolver := rules.NodeModulesResolver{Dir: st.cfg.NodeModulesPath()}
	ids := st.rules.Loaders()
	ids = append(ids, packages(
		buildPlugins(st.settings, st.html, st.envMap),
		buildOptimization(st.settings).Minimizer,
	)...)
	return false, resolver.Verify(ids)
}

func stageAssemble(st *compileState) (bool, error) {
	s := st.settings
	filename, chunk := ScriptNames(s.FilenameHashing)
	source := st.cfg.SourcePath()

	st.graph = &BuildGraph{
		Mode:    s.Mode,
		Context: st.cfg.ProjectRoot,
		Entry:   st.entries,
		Output: Output{
			Path:          st.cfg.OutputPath(),
			PathInfo:      s.PathInfo,
			Filename:      filename,
			ChunkFilename: chunk,
		},
		DevServer: DevServer{
			Host:             st.host,
			ContentBase:      st.cfg.ContentBase,
			WatchContentBase: true,
			Open:             st.cfg.DevServer.OpenOnStart(),
			Stats:            "minimal",
			PublicPath:       devServerPublicPath(s),
		},
		Bail: s.Bail,
		Resolve: Resolve{
			Modules:    []string{"node_modules"},
			Extensions: []string{".mjs", ".js", ".svelte"},
			Alias: map[string]string{
				rules.ComponentRuntime: filepath.Join(st.cfg.NodeModulesPath(), rules.ComponentRuntime),
				"@":                    source,
			},
			MainFields: []string{"svelte", "browser", "module", "main"},
		},
		Module:       Module{StrictExportPresence: true, Rules: st.rules},
		Plugins:      buildPlugins(s, st.html, st.envMap),
		Optimization: buildOptimization(s),
		Devtool:      Devtool(s.Devtool),
		Node: map[string]string{
			"module":        "empty",
			"dgram":         "empty",
			"dns":           "mock",
			"fs":            "empty",
			"http2":         "empty",
			"net":           "empty",
			"tls":           "empty",
			"child_process": "empty",
		},
	}
	return false, nil
}

func devServerPublicPath(s mode.Settings) string {
	if s.IsProduction() {
		return "/"
	}
	return s.PublicPath
}
