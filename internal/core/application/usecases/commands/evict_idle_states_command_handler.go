package commands

import (
	"context"

	"shippinglabel/internal/core/ports"
)

// EvictIdleStatesCommandHandler removes idle order states from the store and
// reports how many were removed.
type EvictIdleStatesCommandHandler struct {
	store ports.StateStore
}

func NewEvictIdleStatesCommandHandler(store ports.StateStore) EvictIdleStatesCommandHandler {
	return EvictIdleStatesCommandHandler{store: store}
}

func (h EvictIdleStatesCommandHandler) Handle(ctx context.Context, cmd EvictIdleStatesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.store.EvictIdle(ctx, cmd.IdleFor()), nil
}
