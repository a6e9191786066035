package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableorder/internal/core/application/usecases/commands"
	"tableorder/internal/core/domain/model/actor"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"
)

func createAdmin(t *testing.T, restaurantID kernel.UUID) actor.Actor {
	t.Helper()

	adminID := kernel.NewUUID()
	admin, err := actor.NewActor(adminID, "Anna Admin", actor.RestaurantAdmin, restaurantID)
	require.NoError(t, err)
	return admin
}

func statusPtr(s order.Status) *order.Status {
	return &s
}

func methodPtr(m order.PaymentMethod) *order.PaymentMethod {
	return &m
}

func TestNewUpdateOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	admin := createAdmin(t, restaurantID)

	t.Run("status transition only", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(orderID, admin, statusPtr(order.Confirmed), nil, nil, nil)
		require.NoError(t, err)

		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		require.NotNil(t, cmd.TargetStatus())
		assert.Equal(t, order.Confirmed, *cmd.TargetStatus())
		assert.Nil(t, cmd.PaymentMethod())
		assert.Nil(t, cmd.Items())
		assert.Nil(t, cmd.Note())
	})

	t.Run("item edit only", func(t *testing.T) {
		note := "changed mind"
		cmd, err := commands.NewUpdateOrderCommand(orderID, admin, nil, nil, createTestItems(t), &note)
		require.NoError(t, err)

		assert.Nil(t, cmd.TargetStatus())
		assert.Len(t, cmd.Items(), 2)
		require.NotNil(t, cmd.Note())
		assert.Equal(t, note, *cmd.Note())
	})

	t.Run("completing transition carries payment method", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(
			orderID, admin, statusPtr(order.Completed), methodPtr(order.Cash), nil, nil)
		require.NoError(t, err)

		require.NotNil(t, cmd.PaymentMethod())
		assert.Equal(t, order.Cash, *cmd.PaymentMethod())
	})

	t.Run("no changes requested returns error", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(orderID, admin, nil, nil, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "status transition or an item edit")
	})

	t.Run("payment method without completing transition returns error", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(
			orderID, admin, statusPtr(order.Served), methodPtr(order.Cash), nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewUpdateOrderCommand(
			orderID, admin, nil, methodPtr(order.Cash), createTestItems(t), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid payment method returns error", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(
			orderID, admin, statusPtr(order.Completed), methodPtr(order.PaymentMethodUnknown), nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("note without items returns error", func(t *testing.T) {
		note := "orphan note"
		_, err := commands.NewUpdateOrderCommand(orderID, admin, statusPtr(order.Confirmed), nil, nil, &note)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "note may only be updated together with items")
	})

	t.Run("empty non-nil items return error", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(orderID, admin, nil, nil, []order.Item{}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order must have at least 1 item")
	})

	t.Run("invalid target status returns error", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(orderID, admin, statusPtr(order.Unknown), nil, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed actor returns error", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(orderID, actor.Actor{}, statusPtr(order.Confirmed), nil, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
	})

	t.Run("invalid order id returns error", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(kernel.UUID{}, admin, statusPtr(order.Confirmed), nil, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUpdateOrderCommand_Validate(t *testing.T) {
	cmd := commands.UpdateOrderCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
}
