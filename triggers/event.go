package triggers

import (
	"sync"
	"time"

	"github.com/cancelfence/fence"
)

// Signal is a one-shot broadcast primitive: once Set, it stays set, and any
// number of Event triggers may watch it. Watchers are plain callbacks
// appended to an internal notification list (mirroring asyncio.Event's
// waiter list) rather than goroutines parked per watcher — Set fires each
// pending watcher via a zero-delay time.AfterFunc, the same "next tick"
// idiom fence.Fence itself uses, so a watcher only gets a goroutine for the
// brief run of its callback.
type Signal struct {
	mu       sync.Mutex
	isSet    bool
	watchers []*watcher
}

// watcher guards a single callback with its own disarm flag, so it can be
// suppressed whether it is still sitting in Signal.watchers or already
// scheduled via a zero-delay timer (the already-set Arm path below).
type watcher struct {
	mu       sync.Mutex
	cb       func()
	disarmed bool
	timer    *time.Timer
}

func (w *watcher) fire() {
	w.mu.Lock()
	if w.disarmed {
		w.mu.Unlock()
		return
	}
	cb := w.cb
	w.mu.Unlock()
	cb()
}

// disarm suppresses the callback. If it was scheduled via a timer (the
// already-set path), the timer is also stopped.
func (w *watcher) disarm() {
	w.mu.Lock()
	w.disarmed = true
	t := w.timer
	w.mu.Unlock()
	if t != nil {
		t.Stop()
	}
}

// NewSignal returns an unset Signal.
func NewSignal() *Signal {
	return &Signal{}
}

// IsSet reports whether Set has been called.
func (s *Signal) IsSet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSet
}

// Set marks the signal as fired and notifies every current watcher
// exactly once. Idempotent: calling Set more than once has no further
// effect.
func (s *Signal) Set() {
	s.mu.Lock()
	if s.isSet {
		s.mu.Unlock()
		return
	}
	s.isSet = true
	watchers := s.watchers
	s.watchers = nil
	s.mu.Unlock()

	for _, w := range watchers {
		time.AfterFunc(0, w.fire)
	}
}

// watch registers cb to fire once, the first time Set is called. If the
// signal is already set, cb still does not fire synchronously — it is
// deferred, per the Trigger contract's "never invoke onCancel inside Arm"
// rule. Either way, the returned watcher can still be disarmed before its
// deferred callback actually runs.
func (s *Signal) watch(cb func()) *watcher {
	w := &watcher{cb: cb}
	s.mu.Lock()
	if s.isSet {
		s.mu.Unlock()
		w.timer = time.AfterFunc(0, w.fire)
		return w
	}
	s.watchers = append(s.watchers, w)
	s.mu.Unlock()
	return w
}

func (s *Signal) unwatch(w *watcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, x := range s.watchers {
		if x == w {
			s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
			return
		}
	}
}

// EventOption configures an Event trigger.
type EventOption func(*eventConfig)

type eventConfig struct {
	code string
}

// WithEventCode sets the Reason.Code a fired Event reports, for
// programmatic Fence.CancelledBy lookups.
func WithEventCode(code string) EventOption {
	return func(c *eventConfig) { c.code = code }
}

// Event is a Trigger whose condition is "an externally held Signal has
// been Set".
type Event struct {
	sig *Signal
	cfg eventConfig
}

// NewEvent returns an Event trigger watching sig.
func NewEvent(sig *Signal, opts ...EventOption) *Event {
	cfg := eventConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	return &Event{sig: sig, cfg: cfg}
}

func (t *Event) reason() fence.Reason {
	return fence.Reason{
		Message: "event signaled",
		Kind:    fence.KindEvent,
		Code:    t.cfg.code,
	}
}

// Check reports fired iff the Signal is already set.
func (t *Event) Check() (fence.Reason, bool) {
	if t.sig.IsSet() {
		return t.reason(), true
	}
	return fence.Reason{}, false
}

// Arm attaches directly to the Signal's notification list — no additional
// goroutine is spun up per Arm call.
func (t *Event) Arm(onCancel func(fence.Reason)) (fence.TriggerHandle, error) {
	reason := t.reason()
	w := t.sig.watch(func() { onCancel(reason) })
	return &eventHandle{sig: t.sig, w: w}, nil
}

type eventHandle struct {
	sig *Signal
	w   *watcher
}

// Disarm suppresses the watcher's callback, whether it is still pending in
// the Signal's notification list or already scheduled via a zero-delay
// timer because the Signal was set before Arm was called. Idempotent.
func (h *eventHandle) Disarm() {
	h.w.disarm()
	h.sig.unwatch(h.w)
}
