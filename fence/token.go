package fence

import "time"

// tokenState mirrors the three-state cancel-token lifecycle: an
// interruption is scheduled, then either delivered (the context was
// actually cancelled) or rescinded (the body completed before the
// scheduled callback ran, so nothing was ever delivered).
//
// Go's context.CancelFunc has no asyncio-style reentrancy hazard, so the
// scheduling step below is not a safety requirement the way it is for an
// asyncio dispatcher — it exists so a synchronously-completing body (the
// pre-triggered, no-suspension case) can observe cancelled==true without
// its context being closed while it runs, so no interruption is pending
// when Exit rescinds the scheduled one.
type tokenState int32

const (
	tokenScheduled tokenState = iota
	tokenDelivered
	tokenRescinded
)

// cancelToken encapsulates exactly one scheduled-but-not-yet-settled
// interruption for a single Fence. It is created the first time any
// trigger fires and settles at most once, at Exit.
type cancelToken struct {
	state tokenState
	timer *time.Timer
}
