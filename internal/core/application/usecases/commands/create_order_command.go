package commands

import (
	"errors"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"
	"tableorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a walk-in customer's request to open an order
// at a table. It carries the menu snapshots taken at ordering time; the total
// amount is derived, never supplied.
//
// Example:
//
//	item, _ := order.NewItem("m1", "Pho", 50000, 2)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), restaurantID, "5", []order.Item{item}, "no cilantro", "An")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	tableCode    string
	items        []order.Item
	note         string
	customerName string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new dine-in order.
// Validates that both ids are valid, the table code is not empty, and at
// least one valid line item is present. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	tableCode string,
	items []order.Item,
	note string,
	customerName string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		note:         note,
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setTableCode(tableCode),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the restaurant the order is placed at.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// TableCode returns the code of the table the customer sits at.
func (c CreateOrderCommand) TableCode() string {
	return c.tableCode
}

// Items returns the line item snapshots of the new order.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Note returns the customer's optional free-text note.
func (c CreateOrderCommand) Note() string {
	return c.note
}

// CustomerName returns the optional customer display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setTableCode(tableCode string) error {
	if tableCode == "" {
		return errs.NewValueIsRequiredError("tableCode")
	}

	c.tableCode = tableCode
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order must have at least 1 item")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
