// Package kernel provides the domain primitives shared by every part of the
// shipping label workflow.
//
// The package includes:
//   - OrderID: the identifier every per-order workflow state is keyed by
//   - Weight helpers: rounding to 8 decimal places so repeated item moves
//     never accumulate floating-point drift
//   - Dimensions: length/width/height triples parsed from box profiles
//
// These primitives are immutable values and safe for concurrent use.
package kernel
