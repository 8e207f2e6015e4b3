package services

import (
	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelstate"
)

// LabelReducer applies actions to per-order label states.
//
// Business rules:
//   - A state passed in is never modified; changes are made on a clone
//   - Unknown actions and rejected transitions return the input state
//   - Each order's state is independent of every other order's
//
// Example usage:
//
//	reducer := services.NewLabelReducer(labelstate.DefaultInitializer{})
//	state := reducer.Reduce(nil, action.Init{Params: params})
//	state = reducer.Reduce(state, action.AddPackage{})
type LabelReducer struct {
	initializer labelstate.Initializer
}

// NewLabelReducer creates a reducer that builds initial states with
// initializer. A nil initializer falls back to labelstate.DefaultInitializer.
func NewLabelReducer(initializer labelstate.Initializer) *LabelReducer {
	if initializer == nil {
		initializer = labelstate.DefaultInitializer{}
	}
	return &LabelReducer{initializer: initializer}
}

// Reduce returns the state that results from applying a to state. A nil
// state stands for an order seen for the first time and is replaced by
// labelstate.Empty before the action is applied.
func (r *LabelReducer) Reduce(state *labelstate.State, a action.Action) *labelstate.State {
	if state == nil {
		state = labelstate.Empty()
	}

	switch a := a.(type) {
	case action.Init:
		return r.initializer.Initialize(a.Params)
	case action.SetIsFetching:
		return update(state, func(next *labelstate.State) { next.IsFetching = a.IsFetching })
	case action.SetFetchError:
		return update(state, func(next *labelstate.State) { next.Error = a.Error })
	case action.ToggleStep:
		return toggleStep(state, a.Step)
	case action.UpdatePaperSize:
		return update(state, func(next *labelstate.State) { next.PaperSize = a.Value })
	case action.SetEmailDetails:
		return update(state, func(next *labelstate.State) { next.EmailDetails = a.Value })
	case action.SetFulfillOrder:
		return update(state, func(next *labelstate.State) { next.FulfillOrder = a.Value })

	case action.UpdateAddressValue,
		action.RemoveIgnoreValidation,
		action.AddressNormalizationInProgress,
		action.SetNormalizedAddress,
		action.AddressNormalizationCompleted,
		action.SelectNormalizedAddress,
		action.EditAddress,
		action.ConfirmAddressSuggestion:
		return reduceAddress(state, a)

	case action.UpdatePackageWeight,
		action.OpenPackage,
		action.OpenItemMove,
		action.MoveItem,
		action.CloseItemMove,
		action.SetTargetPackage,
		action.OpenAddItem,
		action.CloseAddItem,
		action.SetAddedItem,
		action.AddItems,
		action.AddPackage,
		action.RemovePackage,
		action.SetPackageType,
		action.SavePackages:
		return reducePackages(state, a)

	case action.UpdateRate,
		action.RatesRetrievalInProgress,
		action.SetRates,
		action.RatesRetrievalCompleted,
		action.ClearAvailableRates:
		return reduceRates(state, a)

	case action.OpenPrintingFlow,
		action.ExitPrintingFlow,
		action.PurchaseRequest,
		action.PurchaseResponse,
		action.ShowPrintConfirmation:
		return reducePurchase(state, a)

	case action.OpenRefundDialog,
		action.CloseRefundDialog,
		action.RefundRequest,
		action.RefundResponse,
		action.StatusResponse,
		action.OpenReprintDialog,
		action.ReprintDialogReady,
		action.CloseReprintDialog,
		action.ConfirmReprint,
		action.OpenDetailsDialog,
		action.CloseDetailsDialog:
		return reduceServiceDesk(state, a)
	}

	return state
}

// ReduceOrder applies a to the state of one order in states and returns the
// resulting collection. states itself is not modified and entries of other
// orders are carried over as the same pointers.
//
// When the order's state does not change, states is returned as is. An order
// without an entry reads as labelstate.Empty; an entry is only created once
// an action changes it.
func (r *LabelReducer) ReduceOrder(
	states map[kernel.OrderID]*labelstate.State,
	orderID kernel.OrderID,
	a action.Action,
) map[kernel.OrderID]*labelstate.State {
	prev, ok := states[orderID]
	if !ok {
		prev = labelstate.Empty()
	}

	next := r.Reduce(prev, a)
	if next == prev {
		return states
	}

	out := make(map[kernel.OrderID]*labelstate.State, len(states)+1)
	for id, s := range states {
		out[id] = s
	}
	out[orderID] = next
	return out
}

// update clones state and applies mutate to the clone.
func update(state *labelstate.State, mutate func(next *labelstate.State)) *labelstate.State {
	next := state.Clone()
	mutate(next)
	return next
}

func toggleStep(state *labelstate.State, step labelstate.Step) *labelstate.State {
	if !step.IsValid() {
		return state
	}

	return update(state, func(next *labelstate.State) {
		switch step {
		case labelstate.StepOrigin:
			next.Form.Origin = next.Form.Origin.ToggleExpanded()
		case labelstate.StepDestination:
			next.Form.Destination = next.Form.Destination.ToggleExpanded()
		case labelstate.StepPackages:
			next.Form.Packages = next.Form.Packages.ToggleExpanded()
		case labelstate.StepRates:
			next.Form.Rates = next.Form.Rates.ToggleExpanded()
		}
	})
}
