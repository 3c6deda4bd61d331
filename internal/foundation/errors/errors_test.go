package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "pagegraph.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		file, exists := err.Context().GetString("file")
		if !exists || file != "pagegraph.yaml" {
			t.Errorf("expected context file=pagegraph.yaml, got %v", file)
		}
	})

	t.Run("Error string renders context in key order", func(t *testing.T) {
		err := NewError(CategoryDiscovery, "scan failed").
			WithContext("path", "/src/views").
			WithContext("page", "home").
			WithCause(fmt.Errorf("permission denied")).
			Build()

		want := "[discovery:error] scan failed (page=home, path=/src/views): permission denied"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("WithContext does not mutate the original", func(t *testing.T) {
		base := BuildError("assembly failed").Build()
		derived := base.WithContext("stage", "assemble")

		if _, ok := base.Context().Get("stage"); ok {
			t.Error("expected base context to stay untouched")
		}
		if v, _ := derived.Context().GetString("stage"); v != "assemble" {
			t.Errorf("expected stage=assemble, got %q", v)
		}
	})
}

func TestFailureKinds(t *testing.T) {
	cause := errors.New("no such file or directory")
	tests := []struct {
		name     string
		err      error
		kind     error
		category ErrorCategory
	}{
		{"discovery", DiscoveryFailed("/src/views", cause), ErrDiscovery, CategoryDiscovery},
		{"invalid page", InvalidPage(0, "", "name", "required"), ErrInvalidPage, CategoryValidation},
		{"duplicate entry", DuplicateEntry("home", "a/main.js", "b/main.js"), ErrDuplicateEntry, CategoryValidation},
		{"invalid mode", InvalidMode("staging", []string{"dev", "prod"}), ErrInvalidMode, CategoryValidation},
		{"missing template", MissingTemplate("home", "public/index.html", cause), ErrMissingTemplate, CategoryTemplate},
		{"unresolvable loader", UnresolvableLoader("sass-loader", "node_modules/sass-loader"), ErrUnresolvableLoader, CategoryLoader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("expected errors.Is(%v, %v)", tt.err, tt.kind)
			}
			if GetCategory(tt.err) != tt.category {
				t.Errorf("expected category %s, got %s", tt.category, GetCategory(tt.err))
			}
			for _, other := range []error{ErrDiscovery, ErrInvalidPage, ErrDuplicateEntry, ErrInvalidMode, ErrMissingTemplate, ErrUnresolvableLoader} {
				if other != tt.kind && errors.Is(tt.err, other) {
					t.Errorf("%s unexpectedly matches %v", tt.name, other)
				}
			}
		})
	}

	t.Run("cause stays reachable", func(t *testing.T) {
		err := DiscoveryFailed("/src/views", cause)
		if !errors.Is(err, cause) {
			t.Error("expected discovery error to wrap its cause")
		}
	})

	t.Run("kind survives fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("compile: %w", DuplicateEntry("home", "a", "b"))
		if !errors.Is(wrapped, ErrDuplicateEntry) {
			t.Error("expected wrapped error to match ErrDuplicateEntry")
		}
		if !HasCategory(wrapped, CategoryValidation) {
			t.Error("expected wrapped error to expose validation category")
		}
	})
}

func TestErrorContext(t *testing.T) {
	ctx1 := ErrorContext{}.Set("key1", "value1").Set("shared", "original")
	ctx2 := ErrorContext{}.Set("key2", "value2").Set("shared", "overridden")

	merged := ctx1.Merge(ctx2)

	if v, _ := merged.GetString("shared"); v != "overridden" {
		t.Errorf("expected shared=overridden, got %s", v)
	}
	if keys := merged.Keys(); len(keys) != 3 || keys[0] != "key1" || keys[2] != "shared" {
		t.Errorf("unexpected keys %v", keys)
	}
}
