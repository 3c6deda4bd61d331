package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Outcome is the final compile result.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// StageResult classifies one stage run.
type StageResult string

const (
	StageSucceeded StageResult = "success"
	StageSkipped   StageResult = "skipped"
	StageFailed    StageResult = "fatal"
)

// StageRecord is the timing and result of one stage.
type StageRecord struct {
	Name       StageName   `json:"name"`
	Result     StageResult `json:"result"`
	DurationMS float64     `json:"duration_ms"`
}

// Report summarizes one compilation.
type Report struct {
	SchemaVersion  int           `json:"schema_version"`
	CompileID      string        `json:"compile_id"`
	Mode           string        `json:"mode,omitempty"`
	ConfigSnapshot string        `json:"config_snapshot"`
	Pages          int           `json:"pages"`
	Start          time.Time     `json:"start"`
	End            time.Time     `json:"end"`
	Stages         []StageRecord `json:"stages"`
	Outcome        Outcome       `json:"outcome"`
	Error          string        `json:"error,omitempty"`
}

func newReport(snapshot string) *Report {
	return &Report{
		SchemaVersion:  1,
		CompileID:      uuid.NewString(),
		ConfigSnapshot: snapshot,
		Start:          time.Now(),
		Stages:         []StageRecord{},
	}
}

func (r *Report) record(name StageName, result StageResult, d time.Duration) {
	r.Stages = append(r.Stages, StageRecord{
		Name:       name,
		Result:     result,
		DurationMS: float64(d.Microseconds()) / 1000,
	})
}

func (r *Report) finish(err error) {
	r.End = time.Now()
	if err != nil {
		r.Outcome = OutcomeFailed
		r.Error = err.Error()
		return
	}
	r.Outcome = OutcomeSuccess
}

// Duration returns the wall time of the compilation.
func (r *Report) Duration() time.Duration { return r.End.Sub(r.Start) }

// Stage returns the record for name.
func (r *Report) Stage(name StageName) (StageRecord, bool) {
	for _, s := range r.Stages {
		if s.Name == name {
			return s, true
		}
	}
	return StageRecord{}, false
}

// Persist writes the report as indented JSON to path.
func (r *Report) Persist(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
