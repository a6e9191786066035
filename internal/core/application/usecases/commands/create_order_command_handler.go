package commands

import (
	"context"
	"log/slog"
	"time"

	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/core/domain/model/restaurant"
	"tableorder/internal/core/ports"
)

// notifyTimeout bounds the detached notification send. The request that
// created the order has already returned by then.
const notifyTimeout = 10 * time.Second

// CreateOrderCommandHandler handles the business logic for placing an order.
//
// The table-exclusivity rule is enforced here through the repository: the
// insert fails with a ConflictError when the table already holds an active
// order, atomically, so two concurrent creates for the same table produce
// exactly one order.
//
// After the order is durably committed a notification is dispatched on a
// detached goroutine. The create result does not depend on the dispatch
// outcome; a failed dispatch is logged and dropped.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence, an OrderNotifier for
// the order-created event, and a logger for dispatch failures.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order placement command.
//
// Returns the created order in Pending status, or:
//   - an ObjectNotFoundError for an unknown restaurant
//   - a ConflictError when the table already holds an active order
//   - a validation error for a malformed command
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.RestaurantID(),
		cmd.TableCode(),
		cmd.Items(),
		cmd.Note(),
		cmd.CustomerName(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	go h.dispatchOrderCreated(newOrder, rest)

	return newOrder, nil
}

// dispatchOrderCreated sends the order-created notification outside the
// request path. It deliberately uses a fresh context: the customer's request
// is already answered and must not be tied to the send.
func (h CreateOrderCommandHandler) dispatchOrderCreated(o *order.Order, r *restaurant.Restaurant) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := h.notifier.OrderCreated(ctx, o, r); err != nil {
		h.logger.ErrorContext(ctx, "Order created notification failed",
			"error", err,
			"order_id", o.ID().String(),
			"table_code", o.TableCode(),
		)
	}
}
