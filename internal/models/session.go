package models

// RunResult records the outcome of one training invocation within a grid
// session.
type RunResult struct {
	Combination string `yaml:"combination"`
	LogFile     string `yaml:"log_file"`
	ExitCode    int    `yaml:"exit_code"`
	Duration    string `yaml:"duration"`
	Error       string `yaml:"error,omitempty"`
}

// Session is the manifest written to the logs directory after a full grid
// sweep. One session covers every combination of one `birdops run`.
type Session struct {
	SessionID string      `yaml:"session_id"`
	StartedAt string      `yaml:"started_at"`
	EndedAt   string      `yaml:"ended_at"`
	Script    string      `yaml:"script"`
	DryRun    bool        `yaml:"dry_run,omitempty"`
	Runs      []RunResult `yaml:"runs"`
}
