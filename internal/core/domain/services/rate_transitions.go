package services

import (
	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/labelstate"
)

func reduceRates(state *labelstate.State, a action.Action) *labelstate.State {
	switch a := a.(type) {
	case action.UpdateRate:
		return update(state, func(next *labelstate.State) {
			next.Form.Rates = next.Form.Rates.Update(a.PackageID, a.Value)
		})
	case action.RatesRetrievalInProgress:
		return update(state, func(next *labelstate.State) {
			next.Form.Rates = next.Form.Rates.WithRetrievalInProgress(true)
		})
	case action.RatesRetrievalCompleted:
		return update(state, func(next *labelstate.State) {
			next.Form.Rates = next.Form.Rates.WithRetrievalInProgress(false)
		})
	case action.SetRates:
		return update(state, func(next *labelstate.State) {
			next.Form.Rates = next.Form.Rates.SetRates(a.Rates)
		})
	case action.ClearAvailableRates:
		return update(state, func(next *labelstate.State) {
			next.Form.Rates = next.Form.Rates.ClearAvailable()
			next.Form.NeedsPrintConfirmation = false
		})
	}
	return state
}
