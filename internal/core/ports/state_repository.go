package ports

import (
	"context"

	"github.com/google/uuid"
)

// StateRepository persists registry snapshots across restarts.
type StateRepository interface {
	// Save writes the snapshot, replacing whatever was saved before.
	Save(ctx context.Context, snapshot StateSnapshot) (SaveSummary, error)

	// Load reads the last saved snapshot. Records that cannot be restored are
	// skipped and listed in the summary; only I/O failures are errors.
	Load(ctx context.Context) (StateSnapshot, LoadSummary, error)
}

// SaveSummary describes a completed save.
type SaveSummary struct {
	SnapshotID uuid.UUID
	Orders     int
	Queued     int
}

// SkippedRecord is a persisted record that could not be restored.
type SkippedRecord struct {
	Source string
	Line   int
	Err    error
}

// LoadSummary describes a completed load. Nothing in it is fatal.
type LoadSummary struct {
	SnapshotID       uuid.UUID
	Format           string
	Loaded           int
	Queued           int
	Skipped          []SkippedRecord
	QueueDropped     int
	QueueDerived     bool
	NoSavedState     bool
	SnapshotMismatch bool
}

// SkippedCount totals every record that could not be restored.
func (s LoadSummary) SkippedCount() int {
	return len(s.Skipped) + s.QueueDropped
}
