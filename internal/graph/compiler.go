package graph

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/pagegraph/internal/config"
	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
	"git.home.luguber.info/inful/pagegraph/internal/logfields"
	"git.home.luguber.info/inful/pagegraph/internal/metrics"
	"git.home.luguber.info/inful/pagegraph/internal/netaddr"
	"git.home.luguber.info/inful/pagegraph/internal/observability"
)

// Input is everything one compilation reads. The environment is an explicit
// snapshot; components never read the process environment.
type Input struct {
	Config *config.Config
	// ModeToken is the selected mode token; empty means development.
	ModeToken string
	// LenientMode falls back to development for unrecognized tokens.
	LenientMode bool
	// Environment is injected into generated code as process.env.
	Environment map[string]string
	// VerifyLoaders forces loader verification regardless of the config.
	VerifyLoaders bool
}

// HostResolver picks the dev-server bind address.
type HostResolver interface {
	Host() string
}

// Compiler turns an Input into a BuildGraph.
type Compiler struct {
	recorder metrics.Recorder
	hosts    HostResolver
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Compiler) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithHostResolver sets the dev-server address source.
func WithHostResolver(h HostResolver) Option {
	return func(c *Compiler) {
		if h != nil {
			c.hosts = h
		}
	}
}

// NewCompiler returns a Compiler with a no-op recorder and the host's
// network interfaces as address source.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		recorder: metrics.NoopRecorder{},
		hosts:    netaddr.NewResolver(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile runs every stage in order and stops at the first error. The report
// is returned in both cases; the graph only on success.
func (c *Compiler) Compile(ctx context.Context, in Input) (*BuildGraph, *Report, error) {
	if in.Config == nil {
		report := newReport("")
		err := ferrors.InternalError("compile called without configuration").Build()
		report.finish(err)
		c.recorder.IncCompileOutcome(metrics.OutcomeFailed)
		return nil, report, err
	}

	st := &compileState{in: in, cfg: in.Config}
	report := newReport(in.Config.Snapshot())
	ctx = observability.WithCompileID(ctx, report.CompileID)
	observability.InfoContext(ctx, "Compiling build graph", logfields.Path(in.Config.ProjectRoot))

	st.host = in.Config.DevServer.Host
	if st.host == "" {
		st.host = c.hosts.Host()
	}

	err := c.runStages(ctx, st, report)
	report.Mode = string(st.settings.Mode)
	report.Pages = len(st.pages)
	report.finish(err)

	c.recorder.SetPages(report.Pages)
	c.recorder.ObserveCompileDuration(report.Mode, report.Duration())
	if err != nil {
		c.recorder.IncCompileOutcome(metrics.OutcomeFailed)
		return nil, report, err
	}
	c.recorder.IncCompileOutcome(metrics.OutcomeSuccess)

	observability.InfoContext(observability.WithMode(ctx, report.Mode), "Build graph compiled",
		logfields.Count(report.Pages),
		logfields.DurationMS(float64(report.Duration().Microseconds())/1000))
	return st.graph, report, nil
}

func (c *Compiler) runStages(ctx context.Context, st *compileState, report *Report) error {
	for _, def := range pipeline() {
		stageCtx := observability.WithStage(ctx, string(def.name))
		t0 := time.Now()
		skipped, err := def.fn(st)
		dur := time.Since(t0)

		result := StageSucceeded
		label := metrics.ResultSuccess
		switch {
		case err != nil:
			result, label = StageFailed, metrics.ResultFatal
		case skipped:
			result, label = StageSkipped, metrics.ResultSkipped
		}

		report.record(def.name, result, dur)
		c.recorder.ObserveStageDuration(string(def.name), dur)
		c.recorder.IncStageResult(string(def.name), label)
		observability.DebugContext(stageCtx, "Stage complete",
			slog.String("result", string(result)),
			logfields.DurationMS(float64(dur.Microseconds())/1000))

		if err != nil {
			observability.ErrorContext(stageCtx, "Stage failed", logfields.Error(err))
			return err
		}
	}
	return nil
}
