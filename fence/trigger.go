package fence

// Trigger defines a cancellation condition. Check is a synchronous,
// side-effect-free pre-check consulted once at Enter; Arm registers a
// callback fired exactly once, asynchronously, when the condition first
// becomes true. A Trigger must be safe to Check multiple times and to be
// armed/disarmed by more than one Fence over its lifetime — it holds no
// per-Fence state itself, only its own configuration.
type Trigger interface {
	// Check reports, synchronously and without blocking, whether the
	// cancellation condition already holds. It must not have side effects
	// beyond its own bookkeeping.
	Check() (Reason, bool)

	// Arm registers onCancel to be invoked exactly once when the condition
	// becomes true, from a goroutine other than the caller of Arm — Arm
	// must never invoke onCancel synchronously, even if the condition is
	// already true at the time Arm is called. onCancel must do only O(1)
	// work: record the Reason and return.
	Arm(onCancel func(Reason)) (TriggerHandle, error)
}

// TriggerHandle is a live registration returned by Trigger.Arm. Disarm is
// idempotent: calling it after the trigger has already fired, or calling
// it more than once, must be a safe no-op.
type TriggerHandle interface {
	Disarm()
}
