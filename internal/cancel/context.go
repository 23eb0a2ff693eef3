package cancel

import "context"

// ContextCanceler derives a cancellable context from a parent.
//
// Done performs a non-blocking select on ctx.Done().
type ContextCanceler struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// NewContext creates a ContextCanceler from a parent context.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, cancel := context.WithCancelCause(parent)
	return &ContextCanceler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Done returns true if the context has been cancelled.
func (c *ContextCanceler) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel stops the context with ErrStopped as its cause.
// A cause recorded earlier, by the parent or a previous call, is kept.
func (c *ContextCanceler) Cancel() {
	c.cancel(ErrStopped)
}

// Cause reports why the context stopped.
func (c *ContextCanceler) Cause() error {
	return context.Cause(c.ctx)
}

// Context returns the underlying context.Context.
// Useful for passing to functions that expect a context.
func (c *ContextCanceler) Context() context.Context {
	return c.ctx
}
