package port

import "context"

// Autosaver coalesces rapid edits into a single deferred save.
// Only the most recently scheduled save runs.
type Autosaver interface {
	// Schedule replaces any pending save with save and restarts the delay.
	Schedule(save func(ctx context.Context) error)

	// Flush runs the pending save immediately, if any.
	Flush(ctx context.Context) error

	// Stop flushes the pending save and disables further scheduling.
	Stop(ctx context.Context) error
}
