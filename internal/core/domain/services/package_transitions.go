package services

import (
	"slices"

	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelstate"
)

func reducePackages(state *labelstate.State, a action.Action) *labelstate.State {
	switch a := a.(type) {
	case action.UpdatePackageWeight:
		pkgs, ok := state.Form.Packages.UpdateWeight(a.PackageID, kernel.ParseNumber(a.Value))
		if !ok {
			return state
		}
		return update(state, func(next *labelstate.State) { next.Form.Packages = pkgs })

	case action.OpenPackage:
		return update(state, func(next *labelstate.State) { next.OpenedPackageID = a.OpenedPackageID })

	case action.OpenItemMove:
		return update(state, func(next *labelstate.State) {
			next.ShowItemMoveDialog = true
			next.TargetPackageID = next.OpenedPackageID
			next.MovedItemIndex = a.MovedItemIndex
		})

	case action.MoveItem:
		return moveItem(state, a.OriginPackageID, a.MovedItemIndex, a.TargetPackageID)

	case action.CloseItemMove:
		return update(state, func(next *labelstate.State) {
			next.MovedItemIndex = labelstate.NoItem
			next.ShowItemMoveDialog = false
		})

	case action.SetTargetPackage:
		return update(state, func(next *labelstate.State) { next.TargetPackageID = a.TargetPackageID })

	case action.OpenAddItem:
		return update(state, func(next *labelstate.State) {
			next.ShowAddItemDialog = true
			next.AddedItems = map[string][]int{}
		})

	case action.CloseAddItem:
		return update(state, func(next *labelstate.State) { next.ShowAddItemDialog = false })

	case action.SetAddedItem:
		return setAddedItem(state, a)

	case action.AddItems:
		return addItems(state, a.TargetPackageID)

	case action.AddPackage:
		return update(state, func(next *labelstate.State) {
			pkgs, id := next.Form.Packages.AddPackage()
			next.Form.Packages = pkgs
			next.OpenedPackageID = id
			next.AddedPackageID = id
			resetRates(next)
		})

	case action.RemovePackage:
		pkgs, receiverID, ok := state.Form.Packages.RemovePackage(a.PackageID)
		if !ok {
			return state
		}
		return update(state, func(next *labelstate.State) {
			next.Form.Packages = pkgs
			next.OpenedPackageID = receiverID
			resetRates(next)
		})

	case action.SetPackageType:
		pkgs, ok := state.Form.Packages.SetPackageType(a.PackageID, a.BoxTypeID, a.Box)
		if !ok {
			return state
		}
		return update(state, func(next *labelstate.State) {
			next.Form.Packages = pkgs
			resetRates(next)
		})

	case action.SavePackages:
		return update(state, func(next *labelstate.State) {
			next.Form.Packages = next.Form.Packages.WithSaved(true)
		})
	}
	return state
}

// moveItem moves one item and applies the side effects of a structural
// package change. Rejected moves return state.
func moveItem(state *labelstate.State, originID string, index int, targetID string) *labelstate.State {
	pkgs, result, ok := state.Form.Packages.MoveItem(originID, index, targetID)
	if !ok {
		return state
	}

	return update(state, func(next *labelstate.State) {
		next.Form.Packages = pkgs
		if result.OriginRemoved {
			next.OpenedPackageID = targetID
			if result.AddedPackageID != "" {
				next.OpenedPackageID = result.AddedPackageID
			}
		}
		next.AddedPackageID = result.AddedPackageID
		next.MovedItemIndex = labelstate.NoItem
		next.ShowItemMoveDialog = false
		resetRates(next)
	})
}

// addItems moves every queued item into targetID and closes the add-item
// dialog. Moves are planned against the package set as it was before the
// first move, highest index first per origin.
func addItems(state *labelstate.State, targetID string) *labelstate.State {
	next := state
	for _, m := range state.Form.Packages.PlanBatchMove(state.AddedItems) {
		next = moveItem(next, m.OriginID, m.Index, targetID)
	}
	return update(next, func(next *labelstate.State) { next.ShowAddItemDialog = false })
}

func setAddedItem(state *labelstate.State, a action.SetAddedItem) *labelstate.State {
	return update(state, func(next *labelstate.State) {
		if next.AddedItems == nil {
			next.AddedItems = map[string][]int{}
		}

		indices := next.AddedItems[a.SourcePackageID]
		if a.Added {
			if !slices.Contains(indices, a.MovedItemIndex) {
				indices = append(indices, a.MovedItemIndex)
			}
		} else {
			indices = slices.DeleteFunc(indices, func(i int) bool { return i == a.MovedItemIndex })
		}
		if indices == nil {
			indices = []int{}
		}
		next.AddedItems[a.SourcePackageID] = indices
	})
}

// resetRates invalidates everything derived from the previous package set:
// quotes, selections and the generated print confirmation.
func resetRates(next *labelstate.State) {
	next.Form.NeedsPrintConfirmation = false
	next.Form.Rates = next.Form.Rates.Reset(next.Form.Packages.IDs())
}
