package triggers

import (
	"fmt"
	"sync"
	"time"

	"github.com/cancelfence/fence"
)

// DeadlineOption configures a Deadline trigger.
type DeadlineOption func(*deadlineConfig)

type deadlineConfig struct {
	now  func() time.Time
	code string
}

// WithClock overrides the clock Deadline uses for Remaining() and for
// computing its own absolute deadline — tests inject a fake clock so they
// don't depend on wall-clock timing.
func WithClock(now func() time.Time) DeadlineOption {
	return func(c *deadlineConfig) { c.now = now }
}

// WithDeadlineCode sets the Reason.Code a fired Deadline reports.
func WithDeadlineCode(code string) DeadlineOption {
	return func(c *deadlineConfig) { c.code = code }
}

// Deadline is a Trigger whose condition is "d has elapsed since arming".
// It is the fence.Trigger-shaped wrapper around the same timeout mechanism
// context.WithTimeout provides natively, so a deadline composes with other
// triggers inside a single Fence.
type Deadline struct {
	d   time.Duration
	cfg deadlineConfig

	mu       sync.Mutex
	deadline time.Time
	armed    bool
}

// NewDeadline returns a Deadline trigger that fires after d.
func NewDeadline(d time.Duration, opts ...DeadlineOption) *Deadline {
	cfg := deadlineConfig{now: time.Now}
	for _, o := range opts {
		o(&cfg)
	}
	return &Deadline{d: d, cfg: cfg}
}

func (t *Deadline) reason() fence.Reason {
	return fence.Reason{
		Message: fmt.Sprintf("timed out after %s", t.d),
		Kind:    fence.KindDeadline,
		Code:    t.cfg.code,
	}
}

// Check reports already-elapsed iff d <= 0.
func (t *Deadline) Check() (fence.Reason, bool) {
	if t.d <= 0 {
		return t.reason(), true
	}
	return fence.Reason{}, false
}

// Arm starts a one-shot timer of d; the returned handle stops it on Disarm.
func (t *Deadline) Arm(onCancel func(fence.Reason)) (fence.TriggerHandle, error) {
	t.mu.Lock()
	t.deadline = t.cfg.now().Add(t.d)
	t.armed = true
	t.mu.Unlock()

	reason := t.reason()
	timer := time.AfterFunc(t.d, func() { onCancel(reason) })
	return &deadlineHandle{timer: timer}, nil
}

// Remaining reports the unused time budget, clamped to zero.
func (t *Deadline) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.armed {
		if t.d < 0 {
			return 0
		}
		return t.d
	}
	remaining := t.deadline.Sub(t.cfg.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

type deadlineHandle struct {
	timer *time.Timer
}

func (h *deadlineHandle) Disarm() { h.timer.Stop() }
