package commands

import (
	"context"
	"errors"
	"time"

	"tableorder/internal/core/domain/model/actor"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"
)

// CancelStaleOrdersCommandHandler sweeps pending orders that customers walked
// away from without staff ever confirming them.
//
// Each cancellation acts as the reserved system actor and writes conditionally
// on the order still being Pending; an order confirmed while the sweep runs
// loses the race to the staff member and is simply skipped.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command and returns how many orders it cancelled.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	staleOrders, err := orderRepo.GetAllPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, o := range staleOrders {
		sweeper := actor.SystemActor(o.RestaurantID())
		if err = o.Cancel(sweeper); err != nil {
			return cancelled, err
		}

		err = orderRepo.Update(ctx, o, order.Pending)
		if errors.Is(err, errs.ErrConflict) {
			// Staff confirmed it mid-sweep; their write wins.
			continue
		}
		if err != nil {
			return cancelled, err
		}

		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
