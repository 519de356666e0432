package fence

import "errors"

var (
	// ErrReused is the misuse error surfaced when Enter is called on a
	// Fence that has already been entered.
	ErrReused = errors.New("fence: already entered")
	// ErrNotEntered is the misuse error surfaced when Exit is called
	// without a matching Enter.
	ErrNotEntered = errors.New("fence: exit called without matching enter")
	// ErrNoDeadline is the misuse error surfaced when Remaining is queried
	// on a Fence that carries no deadline-bearing trigger.
	ErrNoDeadline = errors.New("fence: remaining queried on a fence with no deadline trigger")
)
