package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tableorder/internal/core/application/usecases/commands"
	"tableorder/internal/core/domain/model/actor"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/core/ports"
	"tableorder/internal/pkg/errs"
)

type SweepOrderRepo struct{ mock.Mock }

func (m *SweepOrderRepo) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *SweepOrderRepo) Update(ctx context.Context, o *order.Order, expectedStatus order.Status) error {
	args := m.Called(ctx, o, expectedStatus)
	return args.Error(0)
}
func (m *SweepOrderRepo) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *SweepOrderRepo) GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type SweepUoW struct{ mock.Mock }

func (m *SweepUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *SweepUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *SweepUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *SweepUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type SweepUoWFactory struct{ mock.Mock }

func (m *SweepUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func createPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	o, err := order.NewOrder(orderID, restaurantID, "7", createTestItems(t), "", "")
	require.NoError(t, err)
	return o
}

func newSweepMocks(ctx context.Context, stale []*order.Order) (*SweepOrderRepo, *SweepUoW, *SweepUoWFactory) {
	repo := new(SweepOrderRepo)
	uow := new(SweepUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingBefore", mock.Anything, mock.AnythingOfType("time.Time")).Return(stale, nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(SweepUoWFactory)
	factory.On("Create").Return(uow).Once()
	return repo, uow, factory
}

func TestCancelStaleOrdersCommandHandler_Handle_CancelsStaleOrders(t *testing.T) {
	ctx := t.Context()
	first := createPendingOrder(t)
	second := createPendingOrder(t)

	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo, uow, factory := newSweepMocks(ctx, []*order.Order{first, second})
	repo.On("Update", mock.Anything, first, order.Pending).Return(nil).Once()
	repo.On("Update", mock.Anything, second, order.Pending).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)

	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())
	require.NotNil(t, first.UpdatedBy())
	assert.Equal(t, actor.SystemActorName, first.UpdatedByName())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_SkipsOrdersConfirmedMidSweep(t *testing.T) {
	ctx := t.Context()
	winner := createPendingOrder(t)
	loser := createPendingOrder(t)

	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo, uow, factory := newSweepMocks(ctx, []*order.Order{winner, loser})
	repo.On("Update", mock.Anything, winner, order.Pending).Return(nil).Once()
	repo.On("Update", mock.Anything, loser, order.Pending).
		Return(errs.NewConflictError("order was modified concurrently")).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)
	repo.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_NothingToSweep(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	_, uow, factory := newSweepMocks(ctx, []*order.Order{})
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, cancelled)
}

func TestCancelStaleOrdersCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(SweepOrderRepo)
	uow := new(SweepUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(nil, errors.New("connection lost")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(SweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, 0, cancelled)
}

func TestCancelStaleOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelStaleOrdersCommand{} // not constructed properly
	factory := new(SweepUoWFactory)
	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, 0, cancelled)
}
