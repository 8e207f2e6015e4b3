package commands

import (
	"errors"

	"shippinglabel/internal/pkg/errs"
	"shippinglabel/internal/pkg/guard"
)

var (
	ErrRefreshLabelStatusCommandIsNotConstructed = errors.New(
		"RefreshLabelStatusCommand must be created via NewRefreshLabelStatusCommand constructor",
	)
)

// RefreshLabelStatusCommand refreshes the status of labels whose status has
// not been refreshed since they were purchased or loaded. At most Limit
// labels are refreshed per run.
//
// Example:
//
//	cmd, err := NewRefreshLabelStatusCommand(50)
//	if err != nil {
//	    return err
//	}
//	refreshed, err := handler.Handle(ctx, cmd)
type RefreshLabelStatusCommand struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

func NewRefreshLabelStatusCommand(limit int) (RefreshLabelStatusCommand, error) {
	cmd := RefreshLabelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLimit(limit); err != nil {
		return RefreshLabelStatusCommand{}, err
	}

	return cmd, nil
}

func (c RefreshLabelStatusCommand) Validate() error {
	return c.guard.Validate(ErrRefreshLabelStatusCommandIsNotConstructed)
}

func (c RefreshLabelStatusCommand) Limit() int {
	return c.limit
}

func (c *RefreshLabelStatusCommand) setLimit(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	c.limit = limit
	return nil
}
