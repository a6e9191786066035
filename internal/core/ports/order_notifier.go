package ports

import (
	"context"

	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/core/domain/model/restaurant"
)

// OrderNotifier emits an out-of-band notification when an order is created.
//
// Dispatch is best-effort by contract: callers run it detached from the
// request path, log failures, and never surface them to the customer or roll
// back the order.
type OrderNotifier interface {
	// OrderCreated publishes a notification carrying the restaurant's contact
	// info together with the order's table code, items, total, note, and
	// creation time.
	OrderCreated(ctx context.Context, o *order.Order, r *restaurant.Restaurant) error
}
