package services

import (
	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/label"
	"shippinglabel/internal/core/domain/model/labelstate"
)

func reduceServiceDesk(state *labelstate.State, a action.Action) *labelstate.State {
	switch a := a.(type) {
	case action.OpenRefundDialog:
		return update(state, func(next *labelstate.State) {
			next.RefundDialog = &label.RefundDialog{LabelID: a.LabelID}
		})

	case action.CloseRefundDialog:
		if state.RefundDialog == nil || state.RefundDialog.IsSubmitting {
			return state
		}
		return update(state, func(next *labelstate.State) { next.RefundDialog = nil })

	case action.RefundRequest:
		if state.RefundDialog == nil {
			return state
		}
		return update(state, func(next *labelstate.State) { next.RefundDialog.IsSubmitting = true })

	case action.RefundResponse:
		return refundResponse(state, a)

	case action.StatusResponse:
		return statusResponse(state, a)

	case action.OpenReprintDialog:
		return update(state, func(next *labelstate.State) {
			next.ReprintDialog = label.OpenReprint(a.LabelID)
		})

	case action.ReprintDialogReady:
		dialog, ok := state.ReprintDialog.Ready(a.LabelID, a.FileData)
		if !ok {
			return state
		}
		return update(state, func(next *labelstate.State) { next.ReprintDialog = dialog })

	case action.CloseReprintDialog:
		return update(state, func(next *labelstate.State) { next.ReprintDialog = nil })

	case action.ConfirmReprint:
		if state.ReprintDialog == nil {
			return state
		}
		return update(state, func(next *labelstate.State) { next.ReprintDialog.IsFetching = true })

	case action.OpenDetailsDialog:
		return update(state, func(next *labelstate.State) {
			next.DetailsDialog = &label.DetailsDialog{LabelID: a.LabelID}
		})

	case action.CloseDetailsDialog:
		return update(state, func(next *labelstate.State) { next.DetailsDialog = nil })
	}
	return state
}

// refundResponse concludes the refund of the label the dialog is open for.
// A failed refund keeps the dialog open for a retry. A successful one closes
// the dialog even if the label has since left the history.
func refundResponse(state *labelstate.State, a action.RefundResponse) *labelstate.State {
	if state.RefundDialog == nil {
		return state
	}

	if a.Err != nil {
		return update(state, func(next *labelstate.State) { next.RefundDialog.IsSubmitting = false })
	}

	return update(state, func(next *labelstate.State) {
		if i := label.IndexOf(next.Labels, next.RefundDialog.LabelID); i >= 0 {
			next.Labels[i] = next.Labels[i].WithRefund(a.Response)
		}
		next.RefundDialog = nil
	})
}

// statusResponse merges a refreshed status into a label. A failed refresh
// still marks the label as refreshed, with nothing merged.
func statusResponse(state *labelstate.State, a action.StatusResponse) *labelstate.State {
	i := label.IndexOf(state.Labels, a.LabelID)
	if i < 0 {
		return state
	}

	response := a.Response
	if a.Err != nil {
		response = label.StatusUpdate{}
	}

	return update(state, func(next *labelstate.State) {
		next.Labels[i] = next.Labels[i].ApplyStatus(response)
		next.RefreshedLabelStatus = true
	})
}
