package entity

import (
	"errors"
	"fmt"
)

// WindowHandle identifies a window created by the window manager.
type WindowHandle struct {
	ID  string
	PID int // zero when the backend does not spawn a process
}

// WindowSide names one of the two windows of a split.
type WindowSide string

const (
	WindowSidePrimary   WindowSide = "primary"
	WindowSideSecondary WindowSide = "secondary"
)

// ErrWindowCreationFailed is matched by every WindowCreationError.
var ErrWindowCreationFailed = errors.New("window creation failed")

// WindowCreationError reports which side of a split failed to open.
type WindowCreationError struct {
	Side WindowSide
	Err  error
}

func (e *WindowCreationError) Error() string {
	return fmt.Sprintf("%s window creation failed: %v", e.Side, e.Err)
}

func (e *WindowCreationError) Unwrap() []error {
	return []error{ErrWindowCreationFailed, e.Err}
}

// SplitStatus summarizes how many windows a split request opened.
type SplitStatus string

const (
	SplitStatusComplete SplitStatus = "complete"
	SplitStatusPartial  SplitStatus = "partial"
	SplitStatusFailed   SplitStatus = "failed"
)

// SplitOutcome is the reported result of opening both windows.
// A partial outcome keeps the primary handle; nothing is rolled back.
type SplitOutcome struct {
	Status    SplitStatus
	Primary   *WindowHandle
	Secondary *WindowHandle
	Err       error
}

// OK reports whether both windows were created.
func (o SplitOutcome) OK() bool {
	return o.Status == SplitStatusComplete
}
