// Package graph assembles the build graph: the fully resolved configuration
// value a bundler consumes.
//
// A Compiler runs the components as named, timed stages in a fixed order and
// aborts on the first error, so callers receive either a complete BuildGraph
// or an error, never a partial graph:
//
//	c := graph.NewCompiler(graph.WithRecorder(rec))
//	g, report, err := c.Compile(ctx, graph.Input{Config: cfg, ModeToken: "production", Environment: snapshot})
package graph
