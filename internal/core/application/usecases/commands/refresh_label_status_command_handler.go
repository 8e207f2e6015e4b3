package commands

import (
	"context"
	"errors"
	"fmt"

	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/ports"
)

// RefreshLabelStatusCommandHandler asks the status source for every label
// still waiting for a refresh and dispatches the answer as a statusResponse
// action. A failed lookup is dispatched as well; the reducer treats it as an
// empty update and marks the label refreshed.
type RefreshLabelStatusCommandHandler struct {
	store    ports.StateStore
	source   ports.LabelStatusSource
	dispatch DispatchActionCommandHandler
}

func NewRefreshLabelStatusCommandHandler(
	store ports.StateStore,
	source ports.LabelStatusSource,
	dispatch DispatchActionCommandHandler,
) RefreshLabelStatusCommandHandler {
	return RefreshLabelStatusCommandHandler{
		store:    store,
		source:   source,
		dispatch: dispatch,
	}
}

// Handle returns the number of labels a statusResponse was dispatched for.
// Dispatch failures of individual labels are joined into the returned error
// and do not stop the run.
func (h RefreshLabelStatusCommandHandler) Handle(ctx context.Context, cmd RefreshLabelStatusCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var (
		refreshed int
		failures  []error
	)

	for _, orderID := range h.store.OrderIDs(ctx) {
		for _, labelID := range h.pendingLabels(ctx, orderID) {
			if refreshed >= cmd.Limit() {
				return refreshed, errors.Join(failures...)
			}
			if err := ctx.Err(); err != nil {
				return refreshed, errors.Join(append(failures, err)...)
			}

			update, lookupErr := h.source.LabelStatus(ctx, orderID, labelID)
			dispatchCmd, err := NewDispatchActionCommand(orderID, action.StatusResponse{
				LabelID:  labelID,
				Response: update,
				Err:      lookupErr,
			})
			if err == nil {
				err = h.dispatch.Handle(ctx, dispatchCmd)
			}
			if err != nil {
				failures = append(failures, fmt.Errorf("label %s of order %s: %w", labelID, orderID, err))
				continue
			}
			refreshed++
		}
	}

	return refreshed, errors.Join(failures...)
}

func (h RefreshLabelStatusCommandHandler) pendingLabels(ctx context.Context, orderID kernel.OrderID) []string {
	state, ok := h.store.Load(ctx, orderID)
	if !ok || state == nil {
		return nil
	}

	var ids []string
	for _, l := range state.Labels {
		if !l.StatusUpdated {
			ids = append(ids, l.LabelID)
		}
	}
	return ids
}
