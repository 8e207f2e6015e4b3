package commands

import (
	"context"
	"fmt"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/core/domain/services"
	"shippinglabel/internal/core/ports"
)

// DispatchActionCommandHandler applies actions to the live state of orders.
//
// The action is reduced under the store's per-order serialization. Labels the
// action added or changed are written to the label repository before the new
// state is published; if that write fails the state is left as it was.
//
// Example:
//
//	handler := NewDispatchActionCommandHandler(store, reducer, uowFactory)
//	cmd, _ := NewDispatchActionCommand(orderID, action.PurchaseRequest{})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("dispatch failed: %w", err)
//	}
type DispatchActionCommandHandler struct {
	store      ports.StateStore
	reducer    *services.LabelReducer
	uowFactory LabelUoWFactory
}

// NewDispatchActionCommandHandler creates a handler for action dispatch.
func NewDispatchActionCommandHandler(
	store ports.StateStore,
	reducer *services.LabelReducer,
	uowFactory LabelUoWFactory,
) DispatchActionCommandHandler {
	return DispatchActionCommandHandler{
		store:      store,
		reducer:    reducer,
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
func (h DispatchActionCommandHandler) Handle(ctx context.Context, cmd DispatchActionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, _, err := h.store.Apply(ctx, cmd.OrderID(), func(current *labelstate.State) (*labelstate.State, error) {
		next := h.reducer.Reduce(current, cmd.Action())
		if next == current {
			return current, nil
		}

		if err := saveChangedLabels(ctx, h.uowFactory, cmd.OrderID(), current, next); err != nil {
			return nil, fmt.Errorf("%s: %w", cmd.Action().Type(), err)
		}
		return next, nil
	})

	return err
}

// saveChangedLabels persists the labels that differ between prev and next in
// one transaction. Nothing is written when no label changed.
func saveChangedLabels(
	ctx context.Context,
	uowFactory LabelUoWFactory,
	orderID kernel.OrderID,
	prev, next *labelstate.State,
) error {
	changed := labelstate.ChangedLabels(prev, next)
	if len(changed) == 0 {
		return nil
	}

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LabelRepository().Save(ctx, orderID, changed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
