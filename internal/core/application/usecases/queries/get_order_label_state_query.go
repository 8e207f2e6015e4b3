// Package queries contains the read side of the shipping label service:
// the live workflow state of an order and its persisted label history.
package queries

import (
	"errors"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/guard"
)

var (
	ErrGetOrderLabelStateQueryIsNotConstructed = errors.New(
		"GetOrderLabelStateQuery must be created via NewGetOrderLabelStateQuery constructor",
	)
)

// GetOrderLabelStateQuery reads the live label workflow state of an order.
//
// Example:
//
//	query, err := NewGetOrderLabelStateQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	state, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // the order was never initialized or has been evicted
//	}
type GetOrderLabelStateQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewGetOrderLabelStateQuery(orderID kernel.OrderID) (GetOrderLabelStateQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderLabelStateQuery{}, err
	}

	return GetOrderLabelStateQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderLabelStateQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLabelStateQueryIsNotConstructed)
}

func (q GetOrderLabelStateQuery) OrderID() kernel.OrderID {
	return q.orderID
}
