package config

// File and directory names used by the operator commands.
const (
	// GridFileName is the grid configuration file looked up in the
	// working directory.
	GridFileName = "grid.yaml"

	// DefaultLogsDir is where training logs land unless overridden.
	DefaultLogsDir = "logs"

	// SummaryFileName is the aggregated table written into the logs
	// directory.
	SummaryFileName = "summary.csv"

	// TrimLedgerFileName is the SQLite ledger recording which logs have
	// already had their preamble trimmed.
	TrimLedgerFileName = "trim_ledger.db"

	// SessionFilePrefix prefixes the per-sweep manifest files.
	SessionFilePrefix = "session_"
)
