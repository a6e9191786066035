package commands

import (
	"context"

	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/core/domain/services"
	"tableorder/internal/pkg/errs"
)

// UpdateOrderCommandHandler orchestrates order mutations.
//
// Checks run strictly in this sequence: restaurant scope, role capability,
// state-machine legality, persistence. The write is conditional on the status
// the order was loaded with, so a concurrent transition that committed first
// turns this one into a ConflictError instead of a silent double apply.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer *services.TransitionAuthorizer
}

// NewUpdateOrderCommandHandler creates a handler for order mutations.
// Requires an OrderUoWFactory for transactional persistence and the
// TransitionAuthorizer domain service for role capability checks.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer *services.TransitionAuthorizer,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the order mutation command.
//
// Returns the mutated order, or:
//   - an ObjectNotFoundError for an unknown order id
//   - a NotAuthorizedError for a restaurant-scope mismatch or missing role capability
//   - a ConflictError for an illegal transition, a terminal order, or a lost write race
//   - a validation error for a malformed command
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	by := cmd.By()
	if !by.WorksFor(o.RestaurantID()) {
		return nil, errs.NewNotAuthorizedError("actor restaurant scope does not match order")
	}

	// loadedStatus keys the conditional write below; capturing it before any
	// mutation is what makes racing transitions mutually exclusive.
	loadedStatus := o.Status()

	if cmd.Items() != nil {
		if err = h.authorizer.AuthorizeItemEdit(by.Role()); err != nil {
			return nil, err
		}
		if err = o.EditItems(cmd.Items(), cmd.Note(), by); err != nil {
			return nil, err
		}
	}

	if cmd.TargetStatus() != nil {
		if err = h.applyTransition(o, cmd); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o, loadedStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h UpdateOrderCommandHandler) applyTransition(o *order.Order, cmd UpdateOrderCommand) error {
	by := cmd.By()
	target := *cmd.TargetStatus()

	if err := h.authorizer.AuthorizeTransition(by.Role(), o.Status(), target); err != nil {
		return err
	}

	switch target {
	case order.Confirmed:
		return o.Confirm(by)
	case order.Served:
		return o.Serve(by)
	case order.Completed:
		if cmd.PaymentMethod() == nil {
			return errs.NewValueIsRequiredError("paymentMethod is required to complete an order")
		}
		return o.Complete(by, *cmd.PaymentMethod())
	case order.Cancelled:
		return o.Cancel(by)
	default:
		// No edge leads into any remaining status; report it the same way
		// the state machine does.
		return o.Status().CanTransitionTo(target)
	}
}
