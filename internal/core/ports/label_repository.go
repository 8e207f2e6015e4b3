// Package ports defines the contracts between the shipping label core and
// its infrastructure: label persistence, the per-order state store and the
// source of refreshed label statuses.
package ports

import (
	"context"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/label"
)

// LabelRepository defines the persistence contract for purchased labels.
// Labels are stored per order and addressed by their carrier label ID.
type LabelRepository interface {
	// Save inserts the given labels of an order or updates the stored copy
	// of labels already known.
	Save(ctx context.Context, orderID kernel.OrderID, labels []label.Record) error

	// GetByOrder returns the labels of an order, most recent first. An order
	// without labels yields an empty slice.
	GetByOrder(ctx context.Context, orderID kernel.OrderID) ([]label.Record, error)

	// Get returns one stored label of an order.
	// Returns errs.ObjectNotFoundError when it is not stored.
	Get(ctx context.Context, orderID kernel.OrderID, labelID string) (label.Record, error)
}
