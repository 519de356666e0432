// Package errgroup composes fence.Fence with golang.org/x/sync/errgroup's
// structured concurrency: each goroutine spawned via Group.Go runs its body
// inside its own Fence, nested under the group's shared context. A Fence's
// own trigger firing is suppressed exactly as fence.Run would suppress it
// standalone; a sibling goroutine's failure (or the parent's own
// cancellation) propagates through untouched, since Fence only ever
// swallows an error that originated from its own trigger set.
package errgroup

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cancelfence/fence"
)

// Group wraps a real *errgroup.Group; every goroutine it spawns is fenced.
type Group struct {
	eg  *errgroup.Group
	ctx context.Context
}

// WithContext returns a Group bound to ctx, along with the context the
// group itself derives — the same context every fenced goroutine's Fence
// uses as its parent.
func WithContext(ctx context.Context) (*Group, context.Context) {
	eg, gctx := errgroup.WithContext(ctx)
	return &Group{eg: eg, ctx: gctx}, gctx
}

// Go spawns body in its own goroutine, wrapped in a Fence armed with
// triggers and parented on the group's context. If body's Fence is
// cancelled by one of its own triggers, Go reports success to the group
// (the interruption was handled locally); if the group's context is what
// closed — a sibling failed, or the caller's own parent was cancelled —
// the propagated error still fails the group, exactly as a plain
// g.Go(body) would.
func (g *Group) Go(body func(ctx context.Context) error, triggers ...fence.Trigger) {
	g.eg.Go(func() error {
		_, err := fence.Run(g.ctx, body, triggers...)
		return err
	})
}

// Wait blocks until every goroutine started with Go has returned, then
// returns the first non-nil error, if any — the group's own FailFast
// semantics, unchanged from golang.org/x/sync/errgroup.
func (g *Group) Wait() error {
	return g.eg.Wait()
}
