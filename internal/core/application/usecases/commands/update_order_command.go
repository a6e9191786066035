package commands

import (
	"errors"

	"tableorder/internal/core/domain/model/actor"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"
	"tableorder/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a staff-side mutation of an existing order:
// a status transition, an item/note edit, or a completing transition carrying
// the payment method. At least one change must be requested.
//
// A nil Items slice means "no item edit requested"; an empty non-nil slice is
// a validation error, because an order can never be left without items.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	by            actor.Actor
	targetStatus  *order.Status
	paymentMethod *order.PaymentMethod
	items         []order.Item
	note          *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to mutate an order on behalf of the
// given actor.
//
// Validation rules:
//   - orderID must be valid and the actor properly constructed
//   - at least one of targetStatus, items must be present
//   - a payment method may only accompany a transition into Completed
//   - a note may only accompany an item edit
//   - an item edit must carry at least one valid item
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	by actor.Actor,
	targetStatus *order.Status,
	paymentMethod *order.PaymentMethod,
	items []order.Item,
	note *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBy(by),
		cmd.setChanges(targetStatus, paymentMethod, items, note),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mutate.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the actor performing the mutation.
func (c UpdateOrderCommand) By() actor.Actor {
	return c.by
}

// TargetStatus returns the requested status transition target, or nil when no
// transition was requested.
func (c UpdateOrderCommand) TargetStatus() *order.Status {
	return c.targetStatus
}

// PaymentMethod returns the settlement label for a completing transition, or
// nil when none was supplied.
func (c UpdateOrderCommand) PaymentMethod() *order.PaymentMethod {
	return c.paymentMethod
}

// Items returns the replacement line items, or nil when no item edit was
// requested.
func (c UpdateOrderCommand) Items() []order.Item {
	return c.items
}

// Note returns the replacement note, or nil when the note is untouched.
func (c UpdateOrderCommand) Note() *string {
	return c.note
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}

func (c *UpdateOrderCommand) setChanges(
	targetStatus *order.Status,
	paymentMethod *order.PaymentMethod,
	items []order.Item,
	note *string,
) error {
	if targetStatus == nil && items == nil {
		return errs.NewValueIsRequiredError("update must request a status transition or an item edit")
	}

	if targetStatus != nil {
		if err := targetStatus.Validate(); err != nil {
			return err
		}
	}

	if paymentMethod != nil {
		if targetStatus == nil || *targetStatus != order.Completed {
			return errs.NewValueIsInvalidError("paymentMethod may only be set when completing an order")
		}
		if err := paymentMethod.Validate(); err != nil {
			return err
		}
	}

	if items != nil {
		if len(items) == 0 {
			return errs.NewValueIsRequiredError("order must have at least 1 item")
		}
		for _, item := range items {
			if err := item.Validate(); err != nil {
				return err
			}
		}
	} else if note != nil {
		return errs.NewValueIsInvalidError("note may only be updated together with items")
	}

	c.targetStatus = targetStatus
	c.paymentMethod = paymentMethod
	c.items = items
	c.note = note
	return nil
}
