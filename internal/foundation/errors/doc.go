// Package errors provides the classified error type used across pagegraph.
//
// Every failure that aborts a compilation is a ClassifiedError carrying a
// category (drives the CLI exit code), a severity, a structured context map
// (page name, path, mode token, loader id) and, for the well-known failure
// kinds, a sentinel that callers match with the standard errors.Is:
//
//	if errors.Is(err, ferrors.ErrDuplicateEntry) { ... }
//
// Errors are built with the fluent builder:
//
//	err := errors.NewError(errors.CategoryDiscovery, "page discovery failed").
//		Fatal().
//		WithKind(errors.ErrDiscovery).
//		WithContext("path", root).
//		WithCause(ioErr).
//		Build()
package errors
