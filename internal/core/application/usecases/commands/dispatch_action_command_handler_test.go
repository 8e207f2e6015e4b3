package commands_test

import (
	"errors"
	"testing"

	"shippinglabel/internal/core/application/usecases/commands"
	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/address"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/label"
	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/core/domain/model/packaging"
	"shippinglabel/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T, orderID kernel.OrderID) *fakeStore {
	t.Helper()
	store := newFakeStore()
	initial := services.NewLabelReducer(nil).Reduce(nil, action.Init{Params: labelstate.InitParams{
		FormData: &labelstate.FormData{
			Origin:      address.Values{"country": "US"},
			Destination: address.Values{"country": "US"},
			SelectedPackages: []packaging.Package{
				{ID: "box_1", BoxID: "medium", Weight: 1, Items: []packaging.Item{{ProductID: 1, Name: "A", Weight: 1}}},
			},
		},
		LabelsData: []label.Record{{LabelID: "L1", Status: "PURCHASED", CreatedDate: 1}},
	}})
	_, _, err := store.Apply(t.Context(), orderID, func(*labelstate.State) (*labelstate.State, error) {
		return initial, nil
	})
	require.NoError(t, err)
	return store
}

func mustDispatch(t *testing.T, orderID kernel.OrderID, a action.Action) commands.DispatchActionCommand {
	t.Helper()
	cmd, err := commands.NewDispatchActionCommand(orderID, a)
	require.NoError(t, err)
	return cmd
}

func TestDispatchActionCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockLabelUoWFactory)
	h := commands.NewDispatchActionCommandHandler(newFakeStore(), services.NewLabelReducer(nil), factory)

	err := h.Handle(t.Context(), commands.DispatchActionCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDispatchActionCommandIsNotConstructed)
}

func TestDispatchActionCommandHandler_Handle_NoLabelChangeSkipsPersistence(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	store := seededStore(t, orderID)
	before, _ := store.Load(ctx, orderID)

	factory := new(MockLabelUoWFactory)
	h := commands.NewDispatchActionCommandHandler(store, services.NewLabelReducer(nil), factory)

	err := h.Handle(ctx, mustDispatch(t, orderID, action.AddPackage{}))
	require.NoError(t, err)

	after, _ := store.Load(ctx, orderID)
	assert.NotSame(t, before, after)
	assert.Len(t, after.Form.Packages.Packages(), 2)
	factory.AssertNotCalled(t, "Create")
}

func TestDispatchActionCommandHandler_Handle_IdentityTransitionKeepsState(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	store := seededStore(t, orderID)
	before, _ := store.Load(ctx, orderID)

	factory := new(MockLabelUoWFactory)
	h := commands.NewDispatchActionCommandHandler(store, services.NewLabelReducer(nil), factory)

	err := h.Handle(ctx, mustDispatch(t, orderID, action.RemovePackage{PackageID: "box_1"}))
	require.NoError(t, err)

	after, _ := store.Load(ctx, orderID)
	assert.Same(t, before, after)
	factory.AssertNotCalled(t, "Create")
}

func TestDispatchActionCommandHandler_Handle_PurchasePersistsNewLabels(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	store := seededStore(t, orderID)
	purchased := []label.Record{{LabelID: "L2", Status: "PURCHASED", CreatedDate: 2}}

	repo := new(MockLabelRepository)
	uow := new(MockLabelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LabelRepository").Return(repo).Once(),
		repo.On("Save", ctx, orderID, mock.MatchedBy(func(labels []label.Record) bool {
			return len(labels) == 1 && labels[0].LabelID == "L2" && labels[0].StatusUpdated
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLabelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchActionCommandHandler(store, services.NewLabelReducer(nil), factory)
	err := h.Handle(ctx, mustDispatch(t, orderID, action.PurchaseResponse{Response: purchased}))
	require.NoError(t, err)

	after, _ := store.Load(ctx, orderID)
	require.Len(t, after.Labels, 2)
	assert.Equal(t, "L2", after.Labels[0].LabelID)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDispatchActionCommandHandler_Handle_SaveErrorKeepsState(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	store := seededStore(t, orderID)
	before, _ := store.Load(ctx, orderID)

	repo := new(MockLabelRepository)
	uow := new(MockLabelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LabelRepository").Return(repo).Once(),
		repo.On("Save", ctx, orderID, mock.Anything).Return(errors.New("save error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLabelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchActionCommandHandler(store, services.NewLabelReducer(nil), factory)
	err := h.Handle(ctx, mustDispatch(t, orderID, action.StatusResponse{LabelID: "L1"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statusResponse")

	after, _ := store.Load(ctx, orderID)
	assert.Same(t, before, after)
	assert.False(t, after.Labels[0].StatusUpdated)
	uow.AssertExpectations(t)
}

func TestDispatchActionCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	store := seededStore(t, orderID)

	uow := new(MockLabelUoW)
	factory := new(MockLabelUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewDispatchActionCommandHandler(store, services.NewLabelReducer(nil), factory)
	err := h.Handle(ctx, mustDispatch(t, orderID, action.StatusResponse{LabelID: "L1"}))
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestDispatchActionCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	store := seededStore(t, orderID)

	repo := new(MockLabelRepository)
	uow := new(MockLabelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LabelRepository").Return(repo).Once(),
		repo.On("Save", ctx, orderID, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLabelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchActionCommandHandler(store, services.NewLabelReducer(nil), factory)
	err := h.Handle(ctx, mustDispatch(t, orderID, action.StatusResponse{LabelID: "L1"}))
	require.Error(t, err)

	after, _ := store.Load(ctx, orderID)
	assert.False(t, after.Labels[0].StatusUpdated)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatchActionCommandHandler_Handle_UnknownOrderStartsFromEmpty(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	store := newFakeStore()

	h := commands.NewDispatchActionCommandHandler(store, services.NewLabelReducer(nil), new(MockLabelUoWFactory))
	err := h.Handle(ctx, mustDispatch(t, orderID, action.SetIsFetching{IsFetching: true}))
	require.NoError(t, err)

	state, ok := store.Load(ctx, orderID)
	require.True(t, ok)
	assert.True(t, state.IsFetching)
	assert.False(t, state.Loaded)
}
