package ecs

import "context"

// Executor runs the systems of a single stage for one tick. The default
// Executor is inert: it runs every system sequentially on the calling
// goroutine, which is the only mode the Scheduler itself relies on (the
// executor is single-threaded by default; Access exists so a future executor
// can use it to schedule non-conflicting systems concurrently). Callers that
// want that future may construct a parallel Executor explicitly; nothing in
// this package does so on its own.
type Executor struct {
	pool *workerPool
}

// NewInlineExecutor returns the default sequential Executor.
func NewInlineExecutor() *Executor {
	return &Executor{}
}

// NewParallelExecutor returns an Executor backed by workers background
// goroutines. It is provided as an optional hook: Access.Overlaps gives a
// caller everything needed to batch non-conflicting systems before
// submitting them here, but the Scheduler's default stage runner never does
// that batching itself.
func NewParallelExecutor(workers int) *Executor {
	return &Executor{pool: newWorkerPool(workers)}
}

// Close releases any background goroutines. Safe to call on an inline
// executor (no-op).
func (e *Executor) Close() {
	if e == nil {
		return
	}
	e.pool.Close()
}

// Run executes fn, either inline or on a pool worker, and waits for it to
// finish before returning.
func (e *Executor) Run(ctx context.Context, fn func(context.Context) error) error {
	if e == nil || e.pool == nil {
		return fn(ctx)
	}
	handle := e.pool.Submit(ctx, func(ctx context.Context) jobResult {
		return jobResult{err: fn(ctx)}
	})
	return handle.Wait().err
}
