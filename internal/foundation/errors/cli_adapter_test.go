package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"duplicate entry", DuplicateEntry("home", "a", "b"), 2},
		{"config error", ConfigError("bad config").Build(), 7},
		{"unresolvable loader", UnresolvableLoader("sass-loader", "x"), 8},
		{"discovery failure", DiscoveryFailed("/x", errors.New("boom")), 11},
		{"missing template", MissingTemplate("home", "t.html", nil), 11},
		{"internal error", InternalError("oops").Build(), 10},
		{"unclassified error", errors.New("unknown error"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())

	internal := InternalError("internal issue").Build()
	if got := quiet.FormatError(internal); !strings.Contains(got, "use -v") {
		t.Errorf("expected hint for internal error, got %q", got)
	}
	if got := verbose.FormatError(internal); !strings.Contains(got, "internal issue") {
		t.Errorf("expected full message in verbose mode, got %q", got)
	}

	dup := DuplicateEntry("home", "a/main.js", "b/main.js")
	if got := quiet.FormatError(dup); !strings.Contains(got, "page=home") {
		t.Errorf("expected page context in user-facing message, got %q", got)
	}
	if got := quiet.FormatError(errors.New("plain")); got != "Error: plain" {
		t.Errorf("unexpected format for plain error: %q", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var out bytes.Buffer
	var code int
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	adapter.out = &out
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(InvalidMode("staging", []string{"development", "production"}))

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(out.String(), "mode=staging") {
		t.Errorf("expected mode token in output, got %q", out.String())
	}
}
