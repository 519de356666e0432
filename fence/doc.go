// Package fence provides a multi-source cancellation scope for cooperative
// goroutine-based execution. A Fence arms one or more Triggers around a
// lexical region of work; whichever fires first interrupts the region at
// its next select on the fence's context, and Exit reports whether
// cancellation occurred and by which trigger without letting a
// fence-owned cancellation escape past its own boundary.
package fence
