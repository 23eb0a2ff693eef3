// Package cancel provides the stop signal for the interactive session loop.
//
// A loop stops for one of two reasons: its owner asks it to (the quit menu
// option, end of input), or the parent context is cancelled (an interrupt
// signal). Cause tells the two apart so the loop can report a clean quit
// as success and an interrupt as an error.
package cancel

import "errors"

// ErrStopped is the cause recorded by Cancel.
var ErrStopped = errors.New("cancel: stopped")

// Canceler provides cancellation signaling to a loop.
//
// Implementations must be safe for concurrent use:
//   - The loop goroutine polls Done() between iterations
//   - Cancel() may be called concurrently with Done(), e.g. from a signal handler
type Canceler interface {
	// Done returns true if cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()

	// Cause returns nil while running, ErrStopped after Cancel, or the
	// parent's cause if the parent was cancelled first.
	Cause() error
}
