package commands

import (
	"errors"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/label"
	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/pkg/errs"
	"shippinglabel/internal/pkg/guard"
)

var (
	ErrInitOrderLabelsCommandIsNotConstructed = errors.New(
		"InitOrderLabelsCommand must be created via NewInitOrderLabelsCommand constructor",
	)
)

// InitOrderLabelsCommand builds the initial label state of an order. The
// label history is not part of the command; the handler reads it from the
// label repository.
//
// Example:
//
//	cmd, err := NewInitOrderLabelsCommand(orderID, labelstate.InitParams{
//	    FormData:  formData,
//	    PaperSize: "label",
//	    Enabled:   true,
//	})
type InitOrderLabelsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	params  labelstate.InitParams

	guard guard.ConstructorGuard
}

// NewInitOrderLabelsCommand validates the order and the form data.
func NewInitOrderLabelsCommand(orderID kernel.OrderID, params labelstate.InitParams) (InitOrderLabelsCommand, error) {
	cmd := InitOrderLabelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParams(params),
	); err != nil {
		return InitOrderLabelsCommand{}, err
	}

	return cmd, nil
}

func (c InitOrderLabelsCommand) Validate() error {
	return c.guard.Validate(ErrInitOrderLabelsCommandIsNotConstructed)
}

func (c InitOrderLabelsCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Params returns the init parameters, including the labels the client sent.
func (c InitOrderLabelsCommand) Params() labelstate.InitParams {
	return c.params
}

func (c *InitOrderLabelsCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *InitOrderLabelsCommand) setParams(params labelstate.InitParams) error {
	if params.FormData == nil {
		return errs.NewValueIsRequiredError("formData")
	}
	if params.NumPaymentMethods < 0 {
		return errs.NewValueIsOutOfRangeError("numPaymentMethods", params.NumPaymentMethods, 0, "unbounded")
	}

	params.LabelsData = label.CloneAll(params.LabelsData)
	c.params = params
	return nil
}
