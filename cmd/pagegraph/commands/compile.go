package commands

import (
	"context"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/pagegraph/internal/config"
	"git.home.luguber.info/inful/pagegraph/internal/env"
	"git.home.luguber.info/inful/pagegraph/internal/graph"
	"git.home.luguber.info/inful/pagegraph/internal/logfields"
	"git.home.luguber.info/inful/pagegraph/internal/metrics"
	"git.home.luguber.info/inful/pagegraph/internal/mode"
)

// CompileCmd implements the 'compile' command.
type CompileCmd struct {
	Mode          string `short:"m" help:"Build mode (development|dev|production|prod). Precedence: --mode > NODE_ENV > config."`
	Output        string `short:"o" help:"Write the graph to this file instead of stdout" type:"path"`
	Format        string `short:"f" help:"Output format (json|yaml); defaults to the output file extension, else json"`
	Report        string `help:"Write a JSON compile report to this file" type:"path"`
	MetricsFile   string `name:"metrics-file" help:"Write Prometheus metrics in text format to this file" type:"path"`
	LenientMode   bool   `name:"lenient-mode" help:"Fall back to development for unrecognized mode tokens instead of failing"`
	VerifyLoaders bool   `name:"verify-loaders" help:"Fail when a referenced loader or plugin package is not installed"`
}

func (c *CompileCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	return c.run(context.Background(), g, cfg, env.FromEnviron(os.Environ()))
}

func (c *CompileCmd) run(ctx context.Context, g *Global, cfg *config.Config, process map[string]string) error {
	format, err := c.outputFormat()
	if err != nil {
		return err
	}

	var revisionRoot string
	if cfg.StampRevision {
		revisionRoot = cfg.ProjectRoot
	}
	snapshot, err := env.Load(env.LoadOptions{
		Process:      process,
		Files:        cfg.EnvFilePaths(),
		RevisionRoot: revisionRoot,
	})
	if err != nil {
		return err
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if c.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	compiler := graph.NewCompiler(graph.WithRecorder(recorder))
	bg, report, compileErr := compiler.Compile(ctx, graph.Input{
		Config:        cfg,
		ModeToken:     mode.SelectToken(c.Mode, snapshot["NODE_ENV"], cfg.Mode),
		LenientMode:   c.LenientMode,
		Environment:   snapshot,
		VerifyLoaders: c.VerifyLoaders,
	})

	if c.Report != "" {
		if err := report.Persist(c.Report); err != nil {
			slog.Warn("Failed to write compile report", logfields.Path(c.Report), logfields.Error(err))
		}
	}
	if prom != nil {
		if err := prom.WriteTextfile(c.MetricsFile); err != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(c.MetricsFile), logfields.Error(err))
		}
	}
	if compileErr != nil {
		return compileErr
	}

	if c.Output == "" || c.Output == "-" {
		return graph.Encode(g.stdout(), bg, format)
	}
	if err := graph.WriteFile(c.Output, bg, format); err != nil {
		return err
	}
	slog.Info("Build graph written", logfields.Path(c.Output), logfields.CompileID(report.CompileID))
	return nil
}

func (c *CompileCmd) outputFormat() (graph.Format, error) {
	if c.Format != "" {
		return graph.ParseFormat(c.Format)
	}
	return graph.FormatForPath(c.Output, graph.FormatJSON), nil
}
