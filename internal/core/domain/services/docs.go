// Package services provides the domain services of the shipping label
// workflow.
//
// The package includes:
//   - LabelReducer: the pure transition function applying an action.Action to
//     an order's labelstate.State, and its keyed form over many orders
//
// LabelReducer never blocks, performs no I/O and never fails: every action
// yields a state. An action it has no transition for, or one whose guards
// reject it, returns the input pointer unchanged, so callers can detect a
// no-op with a pointer comparison.
package services
