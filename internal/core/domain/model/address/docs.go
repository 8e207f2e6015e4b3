// Package address implements the per-group address normalization state
// machine of the shipping label workflow.
//
// Every order has two address groups, Origin and Destination. Each group
// moves through the following states:
//
//	Editing ──> NormalizationInProgress ──> Normalized ──> Confirmed
//	   ^                                        │
//	   └────────────────────────────────────────┘
//	                 (re-edit)
//
// Normalization itself is performed by an external service; this package only
// records the request/response pair and the user's choice between the typed
// and the suggested address.
//
// All operations are value-receiver methods returning a new Group. The
// receiver is never modified, so a Group can be shared between state
// snapshots without copying.
package address
