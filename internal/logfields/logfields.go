package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyCompileID  = "compile_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyMode       = "mode"
	KeyPage       = "page"
	KeyEntry      = "entry"
	KeyPath       = "path"
	KeyTemplate   = "template"
	KeyLoader     = "loader"
	KeyRule       = "rule"
	KeyCount      = "count"
	KeyAddress    = "address"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func CompileID(id string) slog.Attr    { return slog.String(KeyCompileID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Mode(m string) slog.Attr          { return slog.String(KeyMode, m) }
func Page(name string) slog.Attr       { return slog.String(KeyPage, name) }
func Entry(p string) slog.Attr         { return slog.String(KeyEntry, p) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Template(p string) slog.Attr      { return slog.String(KeyTemplate, p) }
func Loader(id string) slog.Attr       { return slog.String(KeyLoader, id) }
func Rule(name string) slog.Attr       { return slog.String(KeyRule, name) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Address(addr string) slog.Attr    { return slog.String(KeyAddress, addr) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
