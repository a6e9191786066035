package services

import (
	"fmt"

	"tableorder/internal/core/domain/model/actor"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"
)

// TransitionAuthorizer decides whether an actor role is allowed to perform a
// given order mutation. It answers the capability question only; whether the
// requested edge exists in the state machine is the Status type's concern,
// and restaurant-scope matching is checked by callers before any role
// evaluation.
//
// Capability rules:
//   - Staff may apply exactly one transition: Pending to Confirmed. Every
//     other target is rejected regardless of graph legality.
//   - RestaurantAdmin may apply every legal transition, edit items and note,
//     and set the payment method when completing.
type TransitionAuthorizer struct{}

// NewTransitionAuthorizer creates a TransitionAuthorizer domain service.
func NewTransitionAuthorizer() *TransitionAuthorizer {
	return &TransitionAuthorizer{}
}

// AuthorizeTransition checks whether role may move an order from the given
// current status to the target status.
//
// Returns:
//   - nil if the role has the capability
//   - NotAuthorizedError if the role lacks it
//   - a validation error for an invalid role
func (a *TransitionAuthorizer) AuthorizeTransition(role actor.Role, from, to order.Status) error {
	if err := role.Validate(); err != nil {
		return err
	}

	switch role {
	case actor.RestaurantAdmin:
		return nil
	case actor.Staff:
		if from == order.Pending && to == order.Confirmed {
			return nil
		}
		return errs.NewNotAuthorizedErrorWithCause(
			"transition is not permitted for role",
			fmt.Errorf("%s may only confirm a pending order, got %s to %s", role.String(), from.String(), to.String()),
		)
	default:
		return errs.NewNotAuthorizedError("role has no order permissions")
	}
}

// AuthorizeItemEdit checks whether role may edit an order's items and note.
// Only RestaurantAdmin has this capability.
func (a *TransitionAuthorizer) AuthorizeItemEdit(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	if role != actor.RestaurantAdmin {
		return errs.NewNotAuthorizedErrorWithCause(
			"item edit is not permitted for role",
			fmt.Errorf("%s may not edit order items", role.String()),
		)
	}
	return nil
}
