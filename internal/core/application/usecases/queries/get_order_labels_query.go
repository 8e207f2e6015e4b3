package queries

import (
	"errors"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/guard"
)

var (
	ErrGetOrderLabelsQueryIsNotConstructed = errors.New(
		"GetOrderLabelsQuery must be created via NewGetOrderLabelsQuery constructor",
	)
)

// GetOrderLabelsQuery reads the persisted label history of an order,
// independent of whether its workflow state is live.
type GetOrderLabelsQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewGetOrderLabelsQuery(orderID kernel.OrderID) (GetOrderLabelsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderLabelsQuery{}, err
	}

	return GetOrderLabelsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderLabelsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLabelsQueryIsNotConstructed)
}

func (q GetOrderLabelsQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetOrderLabelsQueryResponse is one stored label.
type GetOrderLabelsQueryResponse struct {
	LabelID          string
	CarrierID        string
	ServiceName      string
	Tracking         string
	Status           string
	Rate             float64
	Currency         string
	CreatedDate      int64
	RefundableAmount float64
	ProductNames     []string
	RefundStatus     string
}
