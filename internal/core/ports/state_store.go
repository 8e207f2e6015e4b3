package ports

import (
	"context"
	"time"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelstate"
)

// StateTransition computes an order's next state from its current one. The
// current state is nil for an order the store does not hold. Returning an
// error discards the transition.
type StateTransition func(current *labelstate.State) (*labelstate.State, error)

// StateStore holds the live label workflow state of every order.
//
// Transitions of the same order are serialized; transitions of different
// orders run independently.
type StateStore interface {
	// Load returns the state of an order and whether the store holds one.
	Load(ctx context.Context, orderID kernel.OrderID) (*labelstate.State, bool)

	// Apply runs transition against the order's state and stores the result.
	// It returns the state before and after the transition.
	Apply(ctx context.Context, orderID kernel.OrderID, transition StateTransition) (prev, next *labelstate.State, err error)

	// OrderIDs lists the orders the store currently holds.
	OrderIDs(ctx context.Context) []kernel.OrderID

	// EvictIdle drops the state of every order not touched for idleFor and
	// returns how many were dropped.
	EvictIdle(ctx context.Context, idleFor time.Duration) int
}
