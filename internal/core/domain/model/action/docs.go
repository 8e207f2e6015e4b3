// Package action defines the closed set of actions the shipping label
// reducer accepts.
//
// Every action is a plain struct implementing Action. The interface carries
// an unexported method, so no type outside this package can satisfy it and
// the reducer's type switch covers the whole vocabulary.
//
// Response actions (PurchaseResponse, RefundResponse, StatusResponse) carry
// the outcome of an external call; a non-nil Err means the call failed and
// only the matching in-flight flag is cleared.
package action
