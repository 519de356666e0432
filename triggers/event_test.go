package triggers_test

import (
	"testing"
	"time"

	"github.com/cancelfence/fence"
	"github.com/cancelfence/fence/triggers"
)

func TestSignalSetIsIdempotent(t *testing.T) {
	t.Parallel()
	sig := triggers.NewSignal()
	sig.Set()
	sig.Set()
	if !sig.IsSet() {
		t.Fatal("expected signal to be set")
	}
}

func TestEventCheckBeforeSet(t *testing.T) {
	t.Parallel()
	sig := triggers.NewSignal()
	ev := triggers.NewEvent(sig)
	if _, ok := ev.Check(); ok {
		t.Fatal("expected not fired before Set")
	}
}

func TestEventCheckAfterSet(t *testing.T) {
	t.Parallel()
	sig := triggers.NewSignal()
	sig.Set()
	ev := triggers.NewEvent(sig, triggers.WithEventCode("done"))
	r, ok := ev.Check()
	if !ok || r.Code != "done" {
		t.Fatalf("expected fired with code done, got %+v, %v", r, ok)
	}
}

func TestEventArmFiresOnSet(t *testing.T) {
	t.Parallel()
	sig := triggers.NewSignal()
	ev := triggers.NewEvent(sig)
	fired := make(chan fence.Reason, 1)
	h, err := ev.Arm(func(r fence.Reason) { fired <- r })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer h.Disarm()

	sig.Set()

	select {
	case r := <-fired:
		if r.Kind != fence.KindEvent {
			t.Fatalf("unexpected kind: %v", r.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event to fire")
	}
}

// Arm must never invoke onCancel synchronously, even when the Signal is
// already set at Arm time — the callback is still deferred to the next
// tick so callers can safely Arm from within a Check/Arm pair without
// reentrancy hazards. Synchronization goes through a channel throughout
// (rather than a plain bool) so there is no data race between the
// deferred callback and the assertions below.
func TestEventArmOnAlreadySetSignalDefers(t *testing.T) {
	t.Parallel()
	sig := triggers.NewSignal()
	sig.Set()

	ev := triggers.NewEvent(sig)
	fired := make(chan fence.Reason, 1)
	h, err := ev.Arm(func(r fence.Reason) { fired <- r })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer h.Disarm()

	select {
	case <-fired:
		t.Fatal("expected onCancel not to run synchronously inside Arm")
	default:
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the deferred callback")
	}
}

// Disarm must suppress the callback even when it was scheduled via the
// already-set deferral path (Arm called after Set), not only when it is
// still sitting in the Signal's watcher list.
func TestEventDisarmAfterAlreadySetArmPreventsCallback(t *testing.T) {
	t.Parallel()
	sig := triggers.NewSignal()
	sig.Set()

	ev := triggers.NewEvent(sig)
	fired := make(chan fence.Reason, 1)
	h, err := ev.Arm(func(r fence.Reason) { fired <- r })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Disarm()

	select {
	case r := <-fired:
		t.Fatalf("expected no callback after Disarm, got %+v", r)
	case <-time.After(30 * time.Millisecond):
	}
}

func TestEventDisarmBeforeSetPreventsCallback(t *testing.T) {
	t.Parallel()
	sig := triggers.NewSignal()
	ev := triggers.NewEvent(sig)
	fired := make(chan fence.Reason, 1)
	h, err := ev.Arm(func(r fence.Reason) { fired <- r })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Disarm()
	sig.Set()

	select {
	case r := <-fired:
		t.Fatalf("expected no callback after Disarm, got %+v", r)
	case <-time.After(30 * time.Millisecond):
	}
}

func TestEventMultipleWatchersAllFire(t *testing.T) {
	t.Parallel()
	sig := triggers.NewSignal()
	const n = 5
	fired := make(chan struct{}, n)

	for i := 0; i < n; i++ {
		ev := triggers.NewEvent(sig)
		h, err := ev.Arm(func(fence.Reason) { fired <- struct{}{} })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer h.Disarm()
	}

	sig.Set()

	for i := 0; i < n; i++ {
		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for watcher %d", i)
		}
	}
}
