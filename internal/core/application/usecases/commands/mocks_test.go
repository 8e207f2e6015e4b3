package commands_test

import (
	"context"
	"sync"
	"time"

	"shippinglabel/internal/core/application/usecases/commands"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/label"
	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLabelRepository struct{ mock.Mock }

func (m *MockLabelRepository) Save(ctx context.Context, orderID kernel.OrderID, labels []label.Record) error {
	args := m.Called(ctx, orderID, labels)
	return args.Error(0)
}

func (m *MockLabelRepository) GetByOrder(ctx context.Context, orderID kernel.OrderID) ([]label.Record, error) {
	args := m.Called(ctx, orderID)
	labels, _ := args.Get(0).([]label.Record)
	return labels, args.Error(1)
}

func (m *MockLabelRepository) Get(ctx context.Context, orderID kernel.OrderID, labelID string) (label.Record, error) {
	args := m.Called(ctx, orderID, labelID)
	return args.Get(0).(label.Record), args.Error(1)
}

type MockLabelUoW struct{ mock.Mock }

func (m *MockLabelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLabelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLabelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLabelUoW) LabelRepository() ports.LabelRepository {
	args := m.Called()
	return args.Get(0).(ports.LabelRepository)
}

type MockLabelUoWFactory struct{ mock.Mock }

func (m *MockLabelUoWFactory) Create() commands.LabelUoW {
	args := m.Called()
	return args.Get(0).(commands.LabelUoW)
}

type MockLabelStatusSource struct{ mock.Mock }

func (m *MockLabelStatusSource) LabelStatus(
	ctx context.Context,
	orderID kernel.OrderID,
	labelID string,
) (label.StatusUpdate, error) {
	args := m.Called(ctx, orderID, labelID)
	return args.Get(0).(label.StatusUpdate), args.Error(1)
}

// fakeStore is a minimal map-backed StateStore.
type fakeStore struct {
	mu      sync.Mutex
	states  map[kernel.OrderID]*labelstate.State
	order   []kernel.OrderID
	evicted int
}

func newFakeStore() *fakeStore {
	return &fakeStore{states: make(map[kernel.OrderID]*labelstate.State)}
}

func (s *fakeStore) Load(_ context.Context, orderID kernel.OrderID) (*labelstate.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[orderID]
	return state, ok
}

func (s *fakeStore) Apply(
	_ context.Context,
	orderID kernel.OrderID,
	transition ports.StateTransition,
) (*labelstate.State, *labelstate.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.states[orderID]
	next, err := transition(prev)
	if err != nil {
		return prev, prev, err
	}
	if next != nil {
		if !ok {
			s.order = append(s.order, orderID)
		}
		s.states[orderID] = next
	}
	return prev, next, nil
}

func (s *fakeStore) OrderIDs(_ context.Context) []kernel.OrderID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]kernel.OrderID(nil), s.order...)
}

func (s *fakeStore) EvictIdle(_ context.Context, _ time.Duration) int {
	return s.evicted
}
