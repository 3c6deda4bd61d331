// Package metrics provides compile-time observability for pagegraph.
//
// Components receive a Recorder through injection and default to NoopRecorder,
// so nothing needs a nil check:
//
//	compiler := graph.NewCompiler(cfg).WithRecorder(metrics.NoopRecorder{})
//
// The Prometheus implementation registers its collectors on a private registry.
// A one-shot CLI has no scrape endpoint, so the registry is written once at exit
// in the text exposition format (WriteTextfile), suitable for the node-exporter
// textfile collector in CI.
package metrics
