// Package label models shipping labels that were already purchased for an
// order, and the dialogs used to service them after purchase.
//
// Labels are kept most-recent-first. A label is addressed by its carrier
// label ID; the refund, reprint and details dialogs each hold the ID of the
// label they were opened for.
//
// Refund flow:
//
//	open ──► request (isSubmitting) ──► response ok ──► closed, refund merged
//	                                 └► response err ─► open, not submitting
//
// Reprint flow:
//
//	open (isFetching) ──► ready(fileData) ──► confirm (isFetching) ──► close
//
// A ready event for a label other than the one the reprint dialog is open
// for is stale and ignored.
package label
