package fence

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Limiter bounds the number of concurrently-active fenced operations, for
// callers fanning out many Fence-wrapped requests at once. It is a thin
// wrapper over golang.org/x/sync/semaphore,
// the same module the interop/errgroup package already depends on for
// structured concurrency.
type Limiter struct {
	sem *semaphore.Weighted
}

// NewLimiter returns a Limiter that admits at most n concurrent holders. A
// non-positive n disables limiting: Acquire/Release become no-ops.
func NewLimiter(n int64) *Limiter {
	if n <= 0 {
		return nil
	}
	return &Limiter{sem: semaphore.NewWeighted(n)}
}

// Acquire blocks until a slot is free or ctx is done.
func (l *Limiter) Acquire(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.sem.Acquire(ctx, 1)
}

// Release frees a slot acquired via Acquire.
func (l *Limiter) Release() {
	if l == nil {
		return
	}
	l.sem.Release(1)
}
