package ports

import (
	"context"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/label"
)

// LabelStatusSource reports the current status of a purchased label.
type LabelStatusSource interface {
	LabelStatus(ctx context.Context, orderID kernel.OrderID, labelID string) (label.StatusUpdate, error)
}
