package label

import (
	"slices"
)

// Refund is the refund payload attached to a label once a refund was
// requested from the carrier.
type Refund struct {
	Status      string  `json:"status"`
	RequestDate int64   `json:"request_date,omitempty"`
	RefundDate  int64   `json:"refund_date,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
}

// Record is a purchased shipping label.
type Record struct {
	LabelID          string   `json:"label_id"`
	CarrierID        string   `json:"carrier_id"`
	ServiceName      string   `json:"service_name"`
	PackageName      string   `json:"package_name"`
	Tracking         string   `json:"tracking"`
	Rate             float64  `json:"rate"`
	Currency         string   `json:"currency"`
	Status           string   `json:"status"`
	CreatedDate      int64    `json:"created_date"`
	RefundableAmount float64  `json:"refundable_amount"`
	ProductNames     []string `json:"product_names"`
	// StatusUpdated is true once the label's status was fetched from the
	// carrier in this session, or the label was purchased in it.
	StatusUpdated bool    `json:"statusUpdated"`
	Refund        *Refund `json:"refund,omitempty"`
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	r.ProductNames = slices.Clone(r.ProductNames)
	if r.Refund != nil {
		refund := *r.Refund
		r.Refund = &refund
	}
	return r
}

// WithRefund returns a copy of r carrying the given refund payload.
func (r Record) WithRefund(refund Refund) Record {
	next := r.Clone()
	next.Refund = &refund
	return next
}

// StatusUpdate is the carrier's answer to a label status request. Nil fields
// were not reported and leave the label unchanged.
type StatusUpdate struct {
	Status           *string  `json:"status,omitempty"`
	Tracking         *string  `json:"tracking,omitempty"`
	RefundableAmount *float64 `json:"refundable_amount,omitempty"`
	Refund           *Refund  `json:"refund,omitempty"`
}

// ApplyStatus merges the reported fields of u into r and marks the status as
// updated. An empty update only sets the flag.
func (r Record) ApplyStatus(u StatusUpdate) Record {
	next := r.Clone()
	if u.Status != nil {
		next.Status = *u.Status
	}
	if u.Tracking != nil {
		next.Tracking = *u.Tracking
	}
	if u.RefundableAmount != nil {
		next.RefundableAmount = *u.RefundableAmount
	}
	if u.Refund != nil {
		refund := *u.Refund
		next.Refund = &refund
	}
	next.StatusUpdated = true
	return next
}

// IndexOf returns the position of the label with the given ID, or -1.
func IndexOf(labels []Record, labelID string) int {
	return slices.IndexFunc(labels, func(r Record) bool { return r.LabelID == labelID })
}

// CloneAll deep-copies a label list. A nil list stays nil.
func CloneAll(labels []Record) []Record {
	if labels == nil {
		return nil
	}
	out := make([]Record, len(labels))
	for i, r := range labels {
		out[i] = r.Clone()
	}
	return out
}

// Prepend returns purchased, each stamped StatusUpdated, followed by labels.
func Prepend(labels []Record, purchased []Record) []Record {
	out := make([]Record, 0, len(purchased)+len(labels))
	for _, r := range purchased {
		r = r.Clone()
		r.StatusUpdated = true
		out = append(out, r)
	}
	return append(out, CloneAll(labels)...)
}
