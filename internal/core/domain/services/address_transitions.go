package services

import (
	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/address"
	"shippinglabel/internal/core/domain/model/labelstate"
)

func reduceAddress(state *labelstate.State, a action.Action) *labelstate.State {
	switch a := a.(type) {
	case action.UpdateAddressValue:
		return withGroup(state, a.Group, func(g address.Group) address.Group {
			return g.UpdateValue(a.Name, a.Value)
		})
	case action.RemoveIgnoreValidation:
		return withGroup(state, a.Group, address.Group.RemoveIgnoreValidation)
	case action.AddressNormalizationInProgress:
		return withGroup(state, a.Group, address.Group.BeginNormalization)
	case action.SetNormalizedAddress:
		return withGroup(state, a.Group, func(g address.Group) address.Group {
			return g.SetNormalized(a.Normalized, a.IsTrivialNormalization)
		})
	case action.AddressNormalizationCompleted:
		return withGroup(state, a.Group, address.Group.CompleteNormalization)
	case action.SelectNormalizedAddress:
		return withGroup(state, a.Group, func(g address.Group) address.Group {
			return g.WithSelectNormalized(a.SelectNormalized)
		})
	case action.EditAddress:
		return withGroup(state, a.Group, address.Group.Edit)
	case action.ConfirmAddressSuggestion:
		return withGroup(state, a.Group, address.Group.ConfirmSuggestion)
	}
	return state
}

// withGroup replaces the address group of role with transition(group). An
// unknown role leaves state untouched.
func withGroup(state *labelstate.State, role address.Role, transition func(address.Group) address.Group) *labelstate.State {
	if !role.IsValid() {
		return state
	}

	return update(state, func(next *labelstate.State) {
		g := next.Form.Group(role)
		*g = transition(*g)
	})
}
