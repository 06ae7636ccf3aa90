package models

import "time"

// Run statuses recorded in the sync journal.
const (
	RunRunning   = "running"
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

// Output unit statuses recorded in the sync journal.
const (
	UnitWritten   = "written"
	UnitUnchanged = "unchanged"
	UnitSkipped   = "skipped"
)

// JournalRun is one recorded invocation of the sync.
type JournalRun struct {
	ID         string
	Scope      string
	Status     string
	Error      string
	StartedAt  time.Time
	FinishedAt *time.Time
	Units      int
}

// JournalUnit is one output unit (file) handled during a run.
type JournalUnit struct {
	RunID  string
	Path   string
	Kind   ResourceKind
	ItemID string
	Hash   string
	Status string
}
