package env

import (
	"errors"
	"io/fs"
	"log/slog"
	"maps"
	"os"

	"github.com/joho/godotenv"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
	"git.home.luguber.info/inful/pagegraph/internal/git"
	"git.home.luguber.info/inful/pagegraph/internal/logfields"
)

// RevisionKey is the variable set when revision stamping is enabled.
const RevisionKey = "BUILD_REVISION"

// LoadOptions describes where the environment snapshot comes from.
type LoadOptions struct {
	// Process is the process environment. Its values always win.
	Process map[string]string
	// Files are dotenv files read in order; later files override earlier ones.
	// Missing files are skipped.
	Files []string
	// RevisionRoot enables BUILD_REVISION stamping from the repository
	// enclosing this path. Empty disables stamping.
	RevisionRoot string
}

// Load builds the environment snapshot. Dotenv values never override
// variables present in the process environment.
func Load(opts LoadOptions) (map[string]string, error) {
	fromFiles := make(map[string]string)
	for _, path := range opts.Files {
		values, err := readDotenv(path)
		if err != nil {
			return nil, err
		}
		if values == nil {
			continue
		}
		slog.Debug("Loaded dotenv file", logfields.Path(path), logfields.Count(len(values)))
		maps.Copy(fromFiles, values)
	}

	if opts.RevisionRoot != "" {
		rev, err := git.HeadRevision(opts.RevisionRoot)
		if err != nil {
			slog.Warn("Revision stamping skipped", logfields.Path(opts.RevisionRoot), logfields.Error(err))
		} else {
			fromFiles[RevisionKey] = rev
		}
	}

	snapshot := make(map[string]string, len(opts.Process)+len(fromFiles))
	maps.Copy(snapshot, fromFiles)
	maps.Copy(snapshot, opts.Process)
	return snapshot, nil
}

func readDotenv(path string) (map[string]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the project configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, ferrors.FileSystemError("failed to open dotenv file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	defer func() { _ = f.Close() }()

	values, err := godotenv.Parse(f)
	if err != nil {
		return nil, ferrors.ConfigError("failed to parse dotenv file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return values, nil
}
