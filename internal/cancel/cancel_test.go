package cancel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/EstruturaDados/tetris-paulooricardfs/internal/cancel"
)

func TestContextCanceler(t *testing.T) {
	c := cancel.NewContext(context.Background())

	if c.Done() {
		t.Error("expected Done() = false before Cancel()")
	}
	if c.Cause() != nil {
		t.Errorf("expected nil Cause() before Cancel(), got %v", c.Cause())
	}

	c.Cancel()

	if !c.Done() {
		t.Error("expected Done() = true after Cancel()")
	}
	if !errors.Is(c.Cause(), cancel.ErrStopped) {
		t.Errorf("expected ErrStopped cause, got %v", c.Cause())
	}

	// Verify idempotent
	c.Cancel()
	if !c.Done() {
		t.Error("expected Done() = true after second Cancel()")
	}
}

func TestContextCanceler_ParentCancelled(t *testing.T) {
	parent, stop := context.WithCancel(context.Background())
	c := cancel.NewContext(parent)

	stop()

	if !c.Done() {
		t.Error("expected Done() = true after parent cancel")
	}
	if !errors.Is(c.Cause(), context.Canceled) {
		t.Errorf("expected context.Canceled cause, got %v", c.Cause())
	}

	// A later Cancel() does not overwrite the parent's cause.
	c.Cancel()
	if errors.Is(c.Cause(), cancel.ErrStopped) {
		t.Error("expected parent cause to win over a later Cancel()")
	}
}

func TestContextCanceler_Context(t *testing.T) {
	parent := context.Background()
	c := cancel.NewContext(parent)

	ctx := c.Context()
	if ctx == nil {
		t.Error("expected non-nil context")
	}

	// Context should not be done yet
	select {
	case <-ctx.Done():
		t.Error("expected context to not be done")
	default:
		// OK
	}

	c.Cancel()

	// Context should be done now
	select {
	case <-ctx.Done():
		// OK
	default:
		t.Error("expected context to be done after Cancel()")
	}
}

// Test that the implementation satisfies the interface
func TestCancelerInterface(t *testing.T) {
	var c cancel.Canceler = cancel.NewContext(context.Background())
	if c.Done() {
		t.Error("expected Done() = false initially")
	}

	c.Cancel()

	if !c.Done() {
		t.Error("expected Done() = true after Cancel()")
	}
}
