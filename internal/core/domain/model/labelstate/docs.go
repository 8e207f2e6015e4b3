// Package labelstate defines the per-order state of the shipping label
// workflow: the label form (addresses, packages, rates), the dialogs around
// it, and the history of labels already purchased for the order.
//
// A *State is treated as immutable once published. Code that needs a changed
// state clones it first (see State.Clone) and mutates the clone.
package labelstate
