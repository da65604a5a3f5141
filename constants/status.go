package constants

// RunStatus is the canonical status for rows in extraction_run.
type RunStatus string

// Stable values (store these exact strings in the DB).
const (
	RunStatusRunning   RunStatus = "RUNNING"    // extraction in progress
	RunStatusExtractOK RunStatus = "EXTRACT_OK" // pass 1 completed (interim record built)
	RunStatusMapped    RunStatus = "MAPPED"     // pass 2 completed (canonical record built)
	RunStatusFailed    RunStatus = "FAILED"     // terminal failure
)
