package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg             *prom.Registry
	stageDuration   *prom.HistogramVec
	stageResults    *prom.CounterVec
	compileDuration *prom.HistogramVec
	compileOutcome  *prom.CounterVec
	pages           prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "pagegraph",
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual compile stages",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"stage"})
	pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "pagegraph",
		Name:      "stage_results_total",
		Help:      "Stage result counts by outcome",
	}, []string{"stage", "result"})
	pr.compileDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "pagegraph",
		Name:      "compile_duration_seconds",
		Help:      "Total build-graph compile duration",
		Buckets:   prom.DefBuckets,
	}, []string{"mode"})
	pr.compileOutcome = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "pagegraph",
		Name:      "compile_outcomes_total",
		Help:      "Compile outcomes by final status",
	}, []string{"outcome"})
	pr.pages = prom.NewGauge(prom.GaugeOpts{
		Namespace: "pagegraph",
		Name:      "pages",
		Help:      "Number of pages in the last compiled build graph",
	})
	reg.MustRegister(pr.stageDuration, pr.stageResults, pr.compileDuration, pr.compileOutcome, pr.pages)
	return pr
}

// Registry exposes the underlying registry (tests, custom exporters).
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

// WriteTextfile writes all registered metrics to path in the text exposition format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveCompileDuration(mode string, d time.Duration) {
	if p == nil || p.compileDuration == nil {
		return
	}
	p.compileDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncCompileOutcome(outcome OutcomeLabel) {
	if p == nil || p.compileOutcome == nil {
		return
	}
	p.compileOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetPages(n int) {
	if p == nil || p.pages == nil {
		return
	}
	p.pages.Set(float64(n))
}
