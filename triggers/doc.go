// Package triggers provides the two stock fence.Trigger implementations:
// Deadline (a duration-based timeout) and Event (an external one-shot
// signal). Both are concrete examples of the abstract Trigger contract
// defined by package fence; the fence core is trigger-agnostic.
package triggers
