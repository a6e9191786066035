package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableorder/internal/core/domain/model/actor"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"
)

func createTestItems(t *testing.T) []order.Item {
	t.Helper()

	pizza, err := order.NewItem("menu-1", "Margherita", 1250, 2)
	require.NoError(t, err)
	cola, err := order.NewItem("menu-2", "Cola", 300, 1)
	require.NoError(t, err)

	return []order.Item{pizza, cola}
}

func createAdmin(t *testing.T, restaurantID kernel.UUID) actor.Actor {
	t.Helper()

	adminID := kernel.NewUUID()
	admin, err := actor.NewActor(adminID, "Anna Admin", actor.RestaurantAdmin, restaurantID)
	require.NoError(t, err)
	return admin
}

func createPendingOrder(t *testing.T) (*order.Order, actor.Actor) {
	t.Helper()

	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	testOrder, err := order.NewOrder(orderID, restaurantID, "5", createTestItems(t), "no onions", "Bob")
	require.NoError(t, err)

	return testOrder, createAdmin(t, restaurantID)
}

func TestNewOrder(t *testing.T) {
	t.Run("valid parameters create pending order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		items := createTestItems(t)

		testOrder, err := order.NewOrder(orderID, restaurantID, "VIP1", items, "window seat", "Alice")
		require.NoError(t, err)
		require.NotNil(t, testOrder)

		assert.NoError(t, testOrder.Validate())
		assert.True(t, testOrder.ID().IsEqual(orderID))
		assert.True(t, testOrder.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, "VIP1", testOrder.TableCode())
		assert.Equal(t, order.Pending, testOrder.Status())
		assert.Equal(t, order.PaymentMethodUnknown, testOrder.PaymentMethod())
		assert.Equal(t, "window seat", testOrder.Note())
		assert.Equal(t, "Alice", testOrder.CustomerName())
		assert.Len(t, testOrder.Items(), 2)
		assert.Equal(t, int64(2*1250+300), testOrder.TotalAmount())
		assert.Nil(t, testOrder.UpdatedBy())
		assert.Empty(t, testOrder.UpdatedByName())
		assert.Nil(t, testOrder.ConfirmedBy())
		assert.Empty(t, testOrder.ConfirmedByName())
		assert.False(t, testOrder.CreatedAt().IsZero())
		assert.Equal(t, testOrder.CreatedAt(), testOrder.UpdatedAt())
	})

	t.Run("invalid id returns error", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		testOrder, err := order.NewOrder(kernel.UUID{}, restaurantID, "5", createTestItems(t), "", "")
		require.Error(t, err)
		assert.Nil(t, testOrder)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("invalid restaurant id returns error", func(t *testing.T) {
		orderID := kernel.NewUUID()

		testOrder, err := order.NewOrder(orderID, kernel.UUID{}, "5", createTestItems(t), "", "")
		require.Error(t, err)
		assert.Nil(t, testOrder)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("empty table code returns error", func(t *testing.T) {
		orderID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		testOrder, err := order.NewOrder(orderID, restaurantID, "", createTestItems(t), "", "")
		require.Error(t, err)
		assert.Nil(t, testOrder)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "tableCode")
	})

	t.Run("empty items return error", func(t *testing.T) {
		orderID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		testOrder, err := order.NewOrder(orderID, restaurantID, "5", nil, "", "")
		require.Error(t, err)
		assert.Nil(t, testOrder)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order must have at least 1 item")
	})

	t.Run("unconstructed item returns error", func(t *testing.T) {
		orderID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		testOrder, err := order.NewOrder(orderID, restaurantID, "5", []order.Item{{}}, "", "")
		require.Error(t, err)
		assert.Nil(t, testOrder)
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("multiple invalid parameters return joined errors", func(t *testing.T) {
		testOrder, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, "", nil, "", "")
		require.Error(t, err)
		assert.Nil(t, testOrder)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("valid parameters restore order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		staffID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		updatedAt := time.Now().UTC().Add(-30 * time.Minute)

		testOrder, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              orderID,
			RestaurantID:    restaurantID,
			TableCode:       "12",
			Items:           createTestItems(t),
			Status:          order.Confirmed,
			Note:            "extra napkins",
			CustomerName:    "Carol",
			UpdatedBy:       &staffID,
			UpdatedByName:   "Sam Staff",
			ConfirmedBy:     &staffID,
			ConfirmedByName: "Sam Staff",
			CreatedAt:       createdAt,
			UpdatedAt:       updatedAt,
		})
		require.NoError(t, err)
		require.NotNil(t, testOrder)

		assert.NoError(t, testOrder.Validate())
		assert.Equal(t, order.Confirmed, testOrder.Status())
		assert.Equal(t, order.PaymentMethodUnknown, testOrder.PaymentMethod())
		require.NotNil(t, testOrder.UpdatedBy())
		assert.True(t, testOrder.UpdatedBy().IsEqual(staffID))
		assert.Equal(t, "Sam Staff", testOrder.UpdatedByName())
		require.NotNil(t, testOrder.ConfirmedBy())
		assert.True(t, testOrder.ConfirmedBy().IsEqual(staffID))
		assert.Equal(t, createdAt, testOrder.CreatedAt())
		assert.Equal(t, updatedAt, testOrder.UpdatedAt())
	})

	t.Run("completed order restores payment method", func(t *testing.T) {
		orderID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		testOrder, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:            orderID,
			RestaurantID:  restaurantID,
			TableCode:     "3",
			Items:         createTestItems(t),
			Status:        order.Completed,
			PaymentMethod: order.BankTransfer,
			CreatedAt:     time.Now().UTC(),
			UpdatedAt:     time.Now().UTC(),
		})
		require.NoError(t, err)

		assert.Equal(t, order.Completed, testOrder.Status())
		assert.Equal(t, order.BankTransfer, testOrder.PaymentMethod())
	})

	t.Run("completed order without payment method returns error", func(t *testing.T) {
		orderID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		testOrder, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:           orderID,
			RestaurantID: restaurantID,
			TableCode:    "3",
			Items:        createTestItems(t),
			Status:       order.Completed,
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
		})
		require.Error(t, err)
		assert.Nil(t, testOrder)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "payment method")
	})

	t.Run("invalid status returns error", func(t *testing.T) {
		orderID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		testOrder, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:           orderID,
			RestaurantID: restaurantID,
			TableCode:    "3",
			Items:        createTestItems(t),
			Status:       order.Unknown,
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
		})
		require.Error(t, err)
		assert.Nil(t, testOrder)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order returns error", func(t *testing.T) {
		var testOrder *order.Order
		assert.ErrorIs(t, testOrder.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero value returns error", func(t *testing.T) {
		assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("constructed order is valid", func(t *testing.T) {
		testOrder, _ := createPendingOrder(t)
		assert.NoError(t, testOrder.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("same id is equal", func(t *testing.T) {
		testOrder, _ := createPendingOrder(t)

		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:           testOrder.ID(),
			RestaurantID: testOrder.RestaurantID(),
			TableCode:    testOrder.TableCode(),
			Items:        testOrder.Items(),
			Status:       order.Pending,
			CreatedAt:    testOrder.CreatedAt(),
			UpdatedAt:    testOrder.UpdatedAt(),
		})
		require.NoError(t, err)

		assert.True(t, testOrder.IsEqual(restored))
	})

	t.Run("different id is not equal", func(t *testing.T) {
		first, _ := createPendingOrder(t)
		second, _ := createPendingOrder(t)
		assert.False(t, first.IsEqual(second))
	})

	t.Run("nil other is not equal", func(t *testing.T) {
		testOrder, _ := createPendingOrder(t)
		assert.False(t, testOrder.IsEqual(nil))
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("pending order confirms and stamps confirming actor", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)

		require.NoError(t, testOrder.Confirm(admin))

		assert.Equal(t, order.Confirmed, testOrder.Status())
		require.NotNil(t, testOrder.UpdatedBy())
		assert.True(t, testOrder.UpdatedBy().IsEqual(admin.ID()))
		assert.Equal(t, admin.Name(), testOrder.UpdatedByName())
		require.NotNil(t, testOrder.ConfirmedBy())
		assert.True(t, testOrder.ConfirmedBy().IsEqual(admin.ID()))
		assert.Equal(t, admin.Name(), testOrder.ConfirmedByName())
	})

	t.Run("confirming actor survives later transitions", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)
		require.NoError(t, testOrder.Confirm(admin))

		other := createAdmin(t, testOrder.RestaurantID())
		require.NoError(t, testOrder.Serve(other))

		require.NotNil(t, testOrder.ConfirmedBy())
		assert.True(t, testOrder.ConfirmedBy().IsEqual(admin.ID()))
		assert.Equal(t, admin.Name(), testOrder.ConfirmedByName())
		require.NotNil(t, testOrder.UpdatedBy())
		assert.True(t, testOrder.UpdatedBy().IsEqual(other.ID()))
	})

	t.Run("confirmed order cannot be confirmed again", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)
		require.NoError(t, testOrder.Confirm(admin))

		err := testOrder.Confirm(admin)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Confirmed, testOrder.Status())
	})

	t.Run("unconstructed actor returns error", func(t *testing.T) {
		testOrder, _ := createPendingOrder(t)

		err := testOrder.Confirm(actor.Actor{})
		require.Error(t, err)
		assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
		assert.Equal(t, order.Pending, testOrder.Status())
	})
}

func TestOrder_Serve(t *testing.T) {
	t.Run("confirmed order is served", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)
		require.NoError(t, testOrder.Confirm(admin))

		require.NoError(t, testOrder.Serve(admin))
		assert.Equal(t, order.Served, testOrder.Status())
	})

	t.Run("pending order cannot be served", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)

		err := testOrder.Serve(admin)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Pending, testOrder.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("served order completes with payment method", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)
		require.NoError(t, testOrder.Confirm(admin))
		require.NoError(t, testOrder.Serve(admin))

		require.NoError(t, testOrder.Complete(admin, order.Cash))

		assert.Equal(t, order.Completed, testOrder.Status())
		assert.Equal(t, order.Cash, testOrder.PaymentMethod())
	})

	t.Run("missing payment method returns error", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)
		require.NoError(t, testOrder.Confirm(admin))
		require.NoError(t, testOrder.Serve(admin))

		err := testOrder.Complete(admin, order.PaymentMethodUnknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Served, testOrder.Status())
		assert.Equal(t, order.PaymentMethodUnknown, testOrder.PaymentMethod())
	})

	t.Run("pending order cannot be completed", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)

		err := testOrder.Complete(admin, order.Cash)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Pending, testOrder.Status())
		assert.Equal(t, order.PaymentMethodUnknown, testOrder.PaymentMethod())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order is cancelled", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)

		require.NoError(t, testOrder.Cancel(admin))
		assert.Equal(t, order.Cancelled, testOrder.Status())
	})

	t.Run("confirmed order is cancelled", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)
		require.NoError(t, testOrder.Confirm(admin))

		require.NoError(t, testOrder.Cancel(admin))
		assert.Equal(t, order.Cancelled, testOrder.Status())
	})

	t.Run("served order cannot be cancelled", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)
		require.NoError(t, testOrder.Confirm(admin))
		require.NoError(t, testOrder.Serve(admin))

		err := testOrder.Cancel(admin)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Served, testOrder.Status())
	})
}

func TestOrder_EditItems(t *testing.T) {
	t.Run("items replaced and total recomputed", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)

		soup, err := order.NewItem("menu-9", "Soup", 700, 3)
		require.NoError(t, err)

		require.NoError(t, testOrder.EditItems([]order.Item{soup}, nil, admin))

		require.Len(t, testOrder.Items(), 1)
		assert.Equal(t, "Soup", testOrder.Items()[0].Name())
		assert.Equal(t, int64(2100), testOrder.TotalAmount())
		assert.Equal(t, order.Pending, testOrder.Status())
		require.NotNil(t, testOrder.UpdatedBy())
		assert.True(t, testOrder.UpdatedBy().IsEqual(admin.ID()))
	})

	t.Run("nil note keeps existing note", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)

		require.NoError(t, testOrder.EditItems(createTestItems(t), nil, admin))
		assert.Equal(t, "no onions", testOrder.Note())
	})

	t.Run("note replaced when provided", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)

		note := "table moved outside"
		require.NoError(t, testOrder.EditItems(createTestItems(t), &note, admin))
		assert.Equal(t, note, testOrder.Note())
	})

	t.Run("empty note overwrites existing note", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)

		note := ""
		require.NoError(t, testOrder.EditItems(createTestItems(t), &note, admin))
		assert.Empty(t, testOrder.Note())
	})

	t.Run("empty items leave order untouched", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)
		originalTotal := testOrder.TotalAmount()

		err := testOrder.EditItems(nil, nil, admin)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, testOrder.Items(), 2)
		assert.Equal(t, originalTotal, testOrder.TotalAmount())
		assert.Nil(t, testOrder.UpdatedBy())
	})

	t.Run("completed order cannot be edited", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)
		require.NoError(t, testOrder.Confirm(admin))
		require.NoError(t, testOrder.Serve(admin))
		require.NoError(t, testOrder.Complete(admin, order.Cash))

		err := testOrder.EditItems(createTestItems(t), nil, admin)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "cannot edit terminal order")
	})

	t.Run("cancelled order cannot be edited", func(t *testing.T) {
		testOrder, admin := createPendingOrder(t)
		require.NoError(t, testOrder.Cancel(admin))

		err := testOrder.EditItems(createTestItems(t), nil, admin)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("unconstructed actor returns error", func(t *testing.T) {
		testOrder, _ := createPendingOrder(t)

		err := testOrder.EditItems(createTestItems(t), nil, actor.Actor{})
		require.Error(t, err)
		assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
	})
}

func TestOrder_Items_ReturnsCopy(t *testing.T) {
	testOrder, _ := createPendingOrder(t)

	items := testOrder.Items()
	items[0] = order.Item{}

	assert.NoError(t, testOrder.Items()[0].Validate())
}

func TestOrder_FullLifecycle(t *testing.T) {
	testOrder, admin := createPendingOrder(t)

	require.NoError(t, testOrder.Confirm(admin))
	require.NoError(t, testOrder.Serve(admin))
	require.NoError(t, testOrder.Complete(admin, order.BankTransfer))

	assert.Equal(t, order.Completed, testOrder.Status())
	assert.Equal(t, order.BankTransfer, testOrder.PaymentMethod())
	require.NotNil(t, testOrder.ConfirmedBy())
	assert.True(t, testOrder.UpdatedAt().After(testOrder.CreatedAt()) ||
		testOrder.UpdatedAt().Equal(testOrder.CreatedAt()))
}
