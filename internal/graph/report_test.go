package graph

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestReport_Lifecycle(t *testing.T) {
	r := newReport("abc")
	_, err := uuid.Parse(r.CompileID)
	require.NoError(t, err)

	r.record(StageResolveMode, StageSucceeded, 1500*time.Microsecond)
	r.record(StageVerifyLoaders, StageSkipped, 0)
	r.finish(nil)

	require.Equal(t, OutcomeSuccess, r.Outcome)
	require.False(t, r.End.Before(r.Start))
	rec, ok := r.Stage(StageResolveMode)
	require.True(t, ok)
	require.InDelta(t, 1.5, rec.DurationMS, 0.0001)

	failed := newReport("abc")
	failed.finish(errors.New("boom"))
	require.Equal(t, OutcomeFailed, failed.Outcome)
	require.Equal(t, "boom", failed.Error)
	require.NotEqual(t, r.CompileID, failed.CompileID)
}

func TestReport_Persist(t *testing.T) {
	r := newReport("snap")
	r.Mode = "production"
	r.Pages = 2
	r.record(StageAssemble, StageSucceeded, time.Millisecond)
	r.finish(nil)

	path := filepath.Join(t.TempDir(), "reports", "compile.json")
	require.NoError(t, r.Persist(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"schema_version", "compile_id", "mode", "config_snapshot", "pages", "start", "end", "stages", "outcome"} {
		require.Contains(t, m, key)
	}
	require.NotContains(t, m, "error")
	require.Equal(t, "success", m["outcome"])
}
