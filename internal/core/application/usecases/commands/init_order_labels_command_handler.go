package commands

import (
	"context"
	"fmt"

	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/label"
	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/core/domain/services"
	"shippinglabel/internal/core/ports"
)

// InitOrderLabelsCommandHandler loads the order's stored labels and replaces
// its live state with the initial one. Stored labels take precedence over
// labels with the same ID sent in the command; labels only the client knows
// are kept. Re-initializing an order discards any
// workflow in progress.
type InitOrderLabelsCommandHandler struct {
	store      ports.StateStore
	reducer    *services.LabelReducer
	uowFactory LabelUoWFactory
}

func NewInitOrderLabelsCommandHandler(
	store ports.StateStore,
	reducer *services.LabelReducer,
	uowFactory LabelUoWFactory,
) InitOrderLabelsCommandHandler {
	return InitOrderLabelsCommandHandler{
		store:      store,
		reducer:    reducer,
		uowFactory: uowFactory,
	}
}

// Handle processes the init command.
func (h InitOrderLabelsCommandHandler) Handle(ctx context.Context, cmd InitOrderLabelsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	labels, err := h.uowFactory.Create().LabelRepository().GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return fmt.Errorf("load labels of order %s: %w", cmd.OrderID(), err)
	}

	params := cmd.Params()
	params.LabelsData = mergeLabels(labels, params.LabelsData)

	_, _, err = h.store.Apply(ctx, cmd.OrderID(), func(current *labelstate.State) (*labelstate.State, error) {
		return h.reducer.Reduce(current, action.Init{Params: params}), nil
	})

	return err
}

func mergeLabels(stored, sent []label.Record) []label.Record {
	known := make(map[string]struct{}, len(stored))
	merged := make([]label.Record, 0, len(stored)+len(sent))
	for _, r := range stored {
		known[r.LabelID] = struct{}{}
		merged = append(merged, r)
	}
	for _, r := range sent {
		if _, ok := known[r.LabelID]; !ok {
			merged = append(merged, r)
		}
	}
	return merged
}
