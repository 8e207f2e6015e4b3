package queries

import (
	"context"

	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/core/ports"
	"shippinglabel/internal/pkg/errs"
)

// GetOrderLabelStateQueryHandler reads order states from the state store.
type GetOrderLabelStateQueryHandler struct {
	store ports.StateStore
}

func NewGetOrderLabelStateQueryHandler(store ports.StateStore) GetOrderLabelStateQueryHandler {
	return GetOrderLabelStateQueryHandler{store: store}
}

// Handle returns a copy of the order's state, so callers may keep it while
// the order moves on. Returns errs.ObjectNotFoundError for an order the store
// does not hold.
func (h GetOrderLabelStateQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLabelStateQuery,
) (*labelstate.State, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	state, ok := h.store.Load(ctx, query.OrderID())
	if !ok || state == nil {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return state.Clone(), nil
}
