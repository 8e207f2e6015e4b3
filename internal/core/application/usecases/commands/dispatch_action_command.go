package commands

import (
	"errors"

	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/guard"
)

var (
	ErrDispatchActionCommandIsNotConstructed = errors.New(
		"DispatchActionCommand must be created via NewDispatchActionCommand constructor",
	)
	ErrActionIsRequired = errors.New("action is required")
)

// DispatchActionCommand applies one action to the label state of an order.
//
// Example:
//
//	cmd, err := NewDispatchActionCommand(orderID, action.AddPackage{})
//	if err != nil {
//	    return fmt.Errorf("invalid action: %w", err)
//	}
//
//	handler := NewDispatchActionCommandHandler(store, reducer, uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to dispatch: %w", err)
//	}
type DispatchActionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	action  action.Action

	guard guard.ConstructorGuard
}

// NewDispatchActionCommand creates a command for the given order and action.
func NewDispatchActionCommand(orderID kernel.OrderID, a action.Action) (DispatchActionCommand, error) {
	cmd := DispatchActionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(a),
	); err != nil {
		return DispatchActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchActionCommand) Validate() error {
	return c.guard.Validate(ErrDispatchActionCommandIsNotConstructed)
}

// OrderID returns the order the action is addressed to.
func (c DispatchActionCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Action returns the action to apply.
func (c DispatchActionCommand) Action() action.Action {
	return c.action
}

func (c *DispatchActionCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DispatchActionCommand) setAction(a action.Action) error {
	if a == nil {
		return ErrActionIsRequired
	}

	c.action = a
	return nil
}
