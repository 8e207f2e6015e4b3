package services

import (
	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/label"
	"shippinglabel/internal/core/domain/model/labelstate"
)

// reducePurchase drives the purchase dialog:
//
//	Idle ──open──► Open ──request──► Submitting ──response ok──► labels prepended
//	                 ▲                    │
//	                 └──response error────┘
func reducePurchase(state *labelstate.State, a action.Action) *labelstate.State {
	switch a := a.(type) {
	case action.OpenPrintingFlow:
		return update(state, func(next *labelstate.State) { next.ShowPurchaseDialog = true })

	case action.ExitPrintingFlow:
		if !a.Force && state.Form.IsSubmitting {
			return state
		}
		return update(state, func(next *labelstate.State) {
			next.ShowPurchaseDialog = false
			next.Form.IsSubmitting = false
		})

	case action.PurchaseRequest:
		return update(state, func(next *labelstate.State) { next.Form.IsSubmitting = true })

	case action.PurchaseResponse:
		if a.Err != nil {
			return update(state, func(next *labelstate.State) { next.Form.IsSubmitting = false })
		}
		return update(state, func(next *labelstate.State) {
			next.Labels = label.Prepend(next.Labels, a.Response)
		})

	case action.ShowPrintConfirmation:
		return update(state, func(next *labelstate.State) {
			next.Form.NeedsPrintConfirmation = true
			next.Form.FileData = a.FileData
		})
	}
	return state
}
