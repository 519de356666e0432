// Package otel provides a no-op fence.Observer implementation. It is a
// placeholder for an OpenTelemetry-backed observer without adding a
// dependency: no OpenTelemetry SDK is otherwise used, so wiring one in
// here would be a bare-stdlib-adjacent guess rather than a grounded
// choice.
package otel

import "context"

// Nop is a no-op implementation of fence.Observer.
type Nop struct{}

// NewNop returns a no-op observer.
func NewNop() *Nop { return &Nop{} }

func (*Nop) FenceEntered(context.Context)                       {}
func (*Nop) FenceSettled(context.Context, bool, int)            {}
func (*Nop) TriggerFired(context.Context, string, string, string) {}
func (*Nop) TriggerPanicked(context.Context, any)               {}
