// Package snapshot decodes the session telemetry Claude Code pipes to a
// statusline command on stdin.
package snapshot

import "encoding/json"

// Defaults applied when a field is absent from the input document.
const (
	DefaultModelName = "Unknown"
	DefaultDir       = "~"
)

// wire mirrors the JSON document piped to statusline commands.
// All fields are optional on the wire.
type wire struct {
	Model struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"model"`
	Workspace struct {
		CurrentDir string `json:"current_dir"`
		ProjectDir string `json:"project_dir"`
	} `json:"workspace"`
	// Top-level cwd is an older field kept as a fallback for current_dir.
	Cwd  string `json:"cwd"`
	Cost struct {
		TotalCostUSD       float64 `json:"total_cost_usd"`
		TotalDurationMs    int64   `json:"total_duration_ms"`
		TotalAPIDurationMs int64   `json:"total_api_duration_ms"`
		TotalLinesAdded    int64   `json:"total_lines_added"`
		TotalLinesRemoved  int64   `json:"total_lines_removed"`
	} `json:"cost"`
	TranscriptPath string `json:"transcript_path"`
}

// Snapshot is the fully-defaulted session telemetry for one render.
// It is constructed once per invocation and never mutated.
type Snapshot struct {
	ModelName       string
	CurrentDir      string
	ProjectDir      string
	TotalCostUSD    float64
	TotalDurationMs int64
	APIDurationMs   int64
	LinesAdded      int64
	LinesRemoved    int64
	TranscriptPath  string
}

// Parse decodes raw JSON into a Snapshot. It never fails: empty input,
// malformed documents, and missing fields all fall back to defaults, so a
// renderer crash can never block the host prompt.
func Parse(raw []byte) Snapshot {
	s := Snapshot{
		ModelName:  DefaultModelName,
		CurrentDir: DefaultDir,
	}

	if len(raw) == 0 {
		return s
	}

	var w wire
	if err := json.Unmarshal(raw, &w); err != nil {
		return s
	}

	if w.Model.DisplayName != "" {
		s.ModelName = w.Model.DisplayName
	} else if w.Model.ID != "" {
		s.ModelName = w.Model.ID
	}

	dir := w.Workspace.CurrentDir
	if dir == "" {
		dir = w.Cwd
	}
	if dir != "" {
		s.CurrentDir = dir
	}
	s.ProjectDir = w.Workspace.ProjectDir

	if w.Cost.TotalCostUSD > 0 {
		s.TotalCostUSD = w.Cost.TotalCostUSD
	}
	if w.Cost.TotalDurationMs > 0 {
		s.TotalDurationMs = w.Cost.TotalDurationMs
	}
	if w.Cost.TotalAPIDurationMs > 0 {
		s.APIDurationMs = w.Cost.TotalAPIDurationMs
	}
	if w.Cost.TotalLinesAdded > 0 {
		s.LinesAdded = w.Cost.TotalLinesAdded
	}
	if w.Cost.TotalLinesRemoved > 0 {
		s.LinesRemoved = w.Cost.TotalLinesRemoved
	}
	s.TranscriptPath = w.TranscriptPath

	return s
}
