package order

import (
	"errors"
	"fmt"

	"tableorder/internal/pkg/errs"
	"tableorder/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item of an order: a snapshot of a menu item taken at order
// or edit time. Later menu edits never change an Item that is already part of
// an order.
//
// Item is an immutable value object. Prices are in minor currency units.
type Item struct {
	menuItemID string
	name       string
	price      int64
	quantity   int

	guard guard.ConstructorGuard
}

// NewItem creates a line item snapshot with validation.
//
// Rules:
//   - menuItemID and name must not be empty
//   - price must not be negative
//   - quantity must be at least 1
func NewItem(menuItemID, name string, price int64, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the identifier of the menu item this snapshot was taken from.
func (i Item) MenuItemID() string {
	return i.menuItemID
}

// Name returns the menu item name as it was at snapshot time.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price in minor currency units as it was at snapshot time.
func (i Item) Price() int64 {
	return i.price
}

// Quantity returns how many units of the item were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() int64 {
	return i.price * int64(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID string) error {
	if menuItemID == "" {
		return errs.NewValueIsRequiredError("menuItemId")
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
