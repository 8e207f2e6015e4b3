// Package packaging implements the package assignment engine: the set of
// packages selected for an order, the items inside them, and the
// move/split/merge operations between packages.
//
// Key business rules:
//   - A package's weight is the sum of its items' weights plus the box tare,
//     unless the user typed a weight, which then survives box changes
//   - Every weight update is rounded to 8 decimal places so that repeated
//     moves never accumulate floating-point drift
//   - A package emptied by a move is deleted
//   - Packages keep their insertion order; "the first package" always means
//     the oldest surviving one
//   - The last package of a set cannot be removed, its items would have
//     nowhere to go
//
// Set operations never modify the receiver. They return a new Set together
// with a flag telling whether anything changed, so callers can keep the
// previous snapshot when an operation is a no-op.
package packaging
