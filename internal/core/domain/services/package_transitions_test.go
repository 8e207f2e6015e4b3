package services_test

import (
	"testing"

	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/core/domain/model/packaging"
	"shippinglabel/internal/core/domain/model/rate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withQuotes puts the state in the "rates fetched, label confirmed" shape a
// structural package change has to undo.
func withQuotes(t *testing.T) *labelstate.State {
	t.Helper()
	return dispatch(initialState(t),
		action.SetRates{Rates: map[string]rate.PackageRates{
			"box_1": {Rates: []rate.Option{{ServiceID: "usps-priority", IsSelected: true}}},
			"box_2": {Rates: []rate.Option{{ServiceID: "usps-first", IsSelected: true}}},
		}},
		action.ShowPrintConfirmation{FileData: "pdf"},
		action.SavePackages{},
	)
}

func assertRatesReset(t *testing.T, s *labelstate.State) {
	t.Helper()
	want := make(map[string]string)
	for _, id := range s.PackageIDs() {
		want[id] = ""
	}
	assert.Equal(t, want, s.Form.Rates.Values)
	assert.Empty(t, s.Form.Rates.Available)
	assert.False(t, s.Form.NeedsPrintConfirmation)
	assert.False(t, s.Form.Packages.Saved)
}

func TestLabelReducer_MoveItem(t *testing.T) {
	t.Run("should ignore guarded moves", func(t *testing.T) {
		s := withQuotes(t)
		testCases := []struct {
			name string
			a    action.MoveItem
		}{
			{"no item", action.MoveItem{OriginPackageID: "box_1", MovedItemIndex: -1, TargetPackageID: "box_2"}},
			{"no origin", action.MoveItem{MovedItemIndex: 0, TargetPackageID: "box_2"}},
			{"same package", action.MoveItem{OriginPackageID: "box_1", MovedItemIndex: 0, TargetPackageID: "box_1"}},
			{"unknown origin", action.MoveItem{OriginPackageID: "box_7", MovedItemIndex: 0, TargetPackageID: "box_2"}},
			{"index out of range", action.MoveItem{OriginPackageID: "box_2", MovedItemIndex: 1, TargetPackageID: "box_1"}},
			{"unknown target", action.MoveItem{OriginPackageID: "box_1", MovedItemIndex: 0, TargetPackageID: "box_7"}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Same(t, s, newReducer().Reduce(s, tc.a))
			})
		}
	})

	t.Run("should conserve weight", func(t *testing.T) {
		s := withQuotes(t)

		got := newReducer().Reduce(s, action.MoveItem{OriginPackageID: "box_1", MovedItemIndex: 1, TargetPackageID: "box_2"})

		before1, before2 := requirePackage(t, s, "box_1"), requirePackage(t, s, "box_2")
		after1, after2 := requirePackage(t, got, "box_1"), requirePackage(t, got, "box_2")
		assert.InDelta(t, before1.Weight, after1.Weight+itemB.Weight, 1e-8)
		assert.InDelta(t, before2.Weight+itemB.Weight, after2.Weight, 1e-8)
		assert.Equal(t, []packaging.Item{itemA, itemB}, after2.Items)
	})

	t.Run("should apply structural side effects", func(t *testing.T) {
		s := dispatch(withQuotes(t), action.OpenItemMove{MovedItemIndex: 1})
		require.True(t, s.ShowItemMoveDialog)
		require.Equal(t, "box_1", s.TargetPackageID)

		got := newReducer().Reduce(s, action.MoveItem{OriginPackageID: "box_1", MovedItemIndex: 1, TargetPackageID: "box_2"})

		assertRatesReset(t, got)
		assert.False(t, got.ShowItemMoveDialog)
		assert.Equal(t, labelstate.NoItem, got.MovedItemIndex)
		assert.Empty(t, got.AddedPackageID)
		assert.Equal(t, "box_1", got.OpenedPackageID)
	})

	t.Run("should create an individual package", func(t *testing.T) {
		got := newReducer().Reduce(withQuotes(t), action.MoveItem{
			OriginPackageID: "box_1", MovedItemIndex: 2, TargetPackageID: packaging.TargetIndividual,
		})

		assert.Equal(t, "client_individual_0", got.AddedPackageID)
		p := requirePackage(t, got, "client_individual_0")
		assert.Equal(t, packaging.BoxIndividual, p.BoxID)
		assert.InDelta(t, itemC.Length, p.Length, 0)
		assert.InDelta(t, itemC.Weight, p.Weight, 0)
		assertRatesReset(t, got)
		assert.Contains(t, got.Form.Rates.Values, "client_individual_0")
	})

	t.Run("should open the created package when the origin empties", func(t *testing.T) {
		got := newReducer().Reduce(withQuotes(t), action.MoveItem{
			OriginPackageID: "box_2", MovedItemIndex: 0, TargetPackageID: packaging.TargetNew,
		})

		assert.Equal(t, []string{"box_1", "client_custom_0"}, got.PackageIDs())
		assert.Equal(t, "client_custom_0", got.OpenedPackageID)
		assert.Equal(t, "client_custom_0", got.AddedPackageID)
		assert.NotContains(t, got.Form.Rates.Values, "box_2")
	})

	t.Run("should open the target when the origin empties", func(t *testing.T) {
		got := newReducer().Reduce(withQuotes(t), action.MoveItem{
			OriginPackageID: "box_2", MovedItemIndex: 0, TargetPackageID: "box_1",
		})

		assert.Equal(t, []string{"box_1"}, got.PackageIDs())
		assert.Equal(t, "box_1", got.OpenedPackageID)
		assert.Len(t, requirePackage(t, got, "box_1").Items, 4)
	})
}

func TestLabelReducer_ItemMoveDialog(t *testing.T) {
	s := dispatch(initialState(t),
		action.OpenPackage{OpenedPackageID: "box_2"},
		action.OpenItemMove{MovedItemIndex: 0},
	)
	assert.True(t, s.ShowItemMoveDialog)
	assert.Equal(t, "box_2", s.TargetPackageID)
	assert.Equal(t, 0, s.MovedItemIndex)

	s = dispatch(s, action.SetTargetPackage{TargetPackageID: "box_1"})
	assert.Equal(t, "box_1", s.TargetPackageID)

	s = dispatch(s, action.CloseItemMove{})
	assert.False(t, s.ShowItemMoveDialog)
	assert.Equal(t, labelstate.NoItem, s.MovedItemIndex)
}

func TestLabelReducer_AddItems(t *testing.T) {
	t.Run("should move queued items highest index first", func(t *testing.T) {
		for _, queue := range [][]int{{0, 2}, {2, 0}} {
			s := dispatch(initialState(t), action.OpenAddItem{})
			for _, i := range queue {
				s = dispatch(s, action.SetAddedItem{SourcePackageID: "box_1", MovedItemIndex: i, Added: true})
			}

			got := dispatch(s, action.AddItems{TargetPackageID: "box_2"})

			assert.Equal(t, []packaging.Item{itemB}, requirePackage(t, got, "box_1").Items, "queue %v", queue)
			assert.ElementsMatch(t, []packaging.Item{itemA, itemA, itemC}, requirePackage(t, got, "box_2").Items)
			assert.False(t, got.ShowAddItemDialog)
			assertRatesReset(t, got)
		}
	})

	t.Run("should collect items from several origins", func(t *testing.T) {
		got := dispatch(initialState(t),
			action.OpenAddItem{},
			action.SetAddedItem{SourcePackageID: "box_2", MovedItemIndex: 0, Added: true},
			action.SetAddedItem{SourcePackageID: "box_1", MovedItemIndex: 1, Added: true},
			action.AddItems{TargetPackageID: packaging.TargetNew},
		)

		assert.Equal(t, []string{"box_1", "client_custom_0", "client_custom_1"}, got.PackageIDs())
		assert.Equal(t, []packaging.Item{itemB}, requirePackage(t, got, "client_custom_0").Items)
		assert.Equal(t, []packaging.Item{itemA}, requirePackage(t, got, "client_custom_1").Items)
	})

	t.Run("should only close the dialog with an empty queue", func(t *testing.T) {
		s := dispatch(initialState(t), action.OpenAddItem{})

		got := dispatch(s, action.AddItems{TargetPackageID: "box_2"})

		assert.False(t, got.ShowAddItemDialog)
		assert.Equal(t, s.PackageIDs(), got.PackageIDs())
		assert.Equal(t, s.Form.Rates, got.Form.Rates)
	})
}

func TestLabelReducer_SetAddedItem(t *testing.T) {
	s := dispatch(initialState(t),
		action.OpenAddItem{},
		action.SetAddedItem{SourcePackageID: "box_1", MovedItemIndex: 2, Added: true},
		action.SetAddedItem{SourcePackageID: "box_1", MovedItemIndex: 0, Added: true},
		action.SetAddedItem{SourcePackageID: "box_1", MovedItemIndex: 2, Added: true},
	)
	assert.True(t, s.ShowAddItemDialog)
	assert.Equal(t, []int{2, 0}, s.AddedItems["box_1"])

	s = dispatch(s,
		action.SetAddedItem{SourcePackageID: "box_1", MovedItemIndex: 2},
		action.SetAddedItem{SourcePackageID: "box_2", MovedItemIndex: 0},
	)
	assert.Equal(t, []int{0}, s.AddedItems["box_1"])
	assert.Equal(t, []int{}, s.AddedItems["box_2"])

	s = dispatch(s, action.CloseAddItem{}, action.OpenAddItem{})
	assert.Empty(t, s.AddedItems)
}

func TestLabelReducer_AddPackage(t *testing.T) {
	got := newReducer().Reduce(withQuotes(t), action.AddPackage{})

	assert.Equal(t, "client_custom_0", got.AddedPackageID)
	assert.Equal(t, "client_custom_0", got.OpenedPackageID)
	p := requirePackage(t, got, "client_custom_0")
	assert.Equal(t, packaging.BoxNotSelected, p.BoxID)
	assert.Zero(t, p.Weight)
	assert.Empty(t, p.Items)
	assertRatesReset(t, got)
}

func TestLabelReducer_RemovePackage(t *testing.T) {
	t.Run("should merge items into the first remaining package", func(t *testing.T) {
		got := newReducer().Reduce(withQuotes(t), action.RemovePackage{PackageID: "box_1"})

		assert.Equal(t, []string{"box_2"}, got.PackageIDs())
		assert.Equal(t, "box_2", got.OpenedPackageID)
		p := requirePackage(t, got, "box_2")
		assert.Equal(t, []packaging.Item{itemA, itemA, itemB, itemC}, p.Items)
		assert.InDelta(t, 0.35+1.0, p.Weight, 1e-8)
		assertRatesReset(t, got)
	})

	t.Run("should keep the last package", func(t *testing.T) {
		s := dispatch(initialState(t), action.RemovePackage{PackageID: "box_1"})

		assert.Same(t, s, newReducer().Reduce(s, action.RemovePackage{PackageID: "box_2"}))
		assert.NotContains(t, s.PackageIDs(), "")
	})

	t.Run("should ignore an unknown package", func(t *testing.T) {
		s := withQuotes(t)

		assert.Same(t, s, newReducer().Reduce(s, action.RemovePackage{PackageID: "nope"}))
	})
}

func TestLabelReducer_SetPackageType(t *testing.T) {
	box := &packaging.Box{ID: "large", BoxWeight: 0.5, InnerDimensions: "12 x 8 x 6"}

	t.Run("should weigh box and items", func(t *testing.T) {
		got := newReducer().Reduce(withQuotes(t), action.SetPackageType{PackageID: "box_1", BoxTypeID: "large", Box: box})

		p := requirePackage(t, got, "box_1")
		assert.Equal(t, "large", p.BoxID)
		assert.InDelta(t, 1.5, p.Weight, 1e-8)
		assert.InDelta(t, 12.0, p.Length, 0)
		assert.InDelta(t, 8.0, p.Width, 0)
		assert.InDelta(t, 6.0, p.Height, 0)
		assertRatesReset(t, got)
	})

	t.Run("should zero the profile when no box is selected", func(t *testing.T) {
		got := newReducer().Reduce(withQuotes(t), action.SetPackageType{PackageID: "box_2", BoxTypeID: packaging.BoxNotSelected})

		p := requirePackage(t, got, "box_2")
		assert.InDelta(t, itemA.Weight, p.Weight, 1e-8)
		assert.Zero(t, p.Length+p.Width+p.Height)
	})

	t.Run("should keep a user specified weight", func(t *testing.T) {
		got := dispatch(withQuotes(t),
			action.UpdatePackageWeight{PackageID: "box_1", Value: "4.2 lbs"},
			action.SetPackageType{PackageID: "box_1", BoxTypeID: "large", Box: box},
		)

		p := requirePackage(t, got, "box_1")
		assert.InDelta(t, 4.2, p.Weight, 1e-8)
		assert.True(t, p.IsUserSpecifiedWeight)
	})

	t.Run("should drop a carried over service", func(t *testing.T) {
		s := initialState(t)
		s.Form.Packages = packaging.NewSet(packaging.Package{ID: "box_9", ServiceID: "usps-priority"})

		got := newReducer().Reduce(s, action.SetPackageType{PackageID: "box_9", BoxTypeID: "large", Box: box})

		assert.Empty(t, requirePackage(t, got, "box_9").ServiceID)
	})
}

func TestLabelReducer_UpdatePackageWeight(t *testing.T) {
	s := withQuotes(t)

	got := newReducer().Reduce(s, action.UpdatePackageWeight{PackageID: "box_2", Value: "abc"})

	p := requirePackage(t, got, "box_2")
	assert.Zero(t, p.Weight)
	assert.True(t, p.IsUserSpecifiedWeight)
	assert.False(t, got.Form.Packages.Saved)
	assert.Equal(t, s.Form.Rates, got.Form.Rates, "a weight edit is not structural")

	assert.Same(t, s, newReducer().Reduce(s, action.UpdatePackageWeight{PackageID: "nope", Value: "1"}))

	got = newReducer().Reduce(got, action.SavePackages{})
	assert.True(t, got.Form.Packages.Saved)
}
