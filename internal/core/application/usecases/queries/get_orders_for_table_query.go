package queries

import (
	"errors"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/errs"
	"tableorder/internal/pkg/guard"
)

var ErrGetOrdersForTableQueryIsNotConstructed = errors.New(
	"GetOrdersForTableQuery must be created via NewGetOrdersForTableQuery constructor",
)

// GetOrdersForTableQuery retrieves every order ever placed at one table of a
// restaurant, newest first. This is the customer-facing polling read: clients
// re-request it on an interval rather than subscribe.
//
// Example:
//
//	query, err := NewGetOrdersForTableQuery(restaurantID, "5")
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersForTableQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	tableCode    string

	guard guard.ConstructorGuard
}

// NewGetOrdersForTableQuery creates a query for one table's order history.
// The restaurant id must be valid and the table code must not be empty.
func NewGetOrdersForTableQuery(restaurantID kernel.UUID, tableCode string) (GetOrdersForTableQuery, error) {
	query := GetOrdersForTableQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRestaurantID(restaurantID),
		query.setTableCode(tableCode),
	); err != nil {
		return GetOrdersForTableQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersForTableQueryIsNotConstructed if validation fails.
func (q GetOrdersForTableQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForTableQueryIsNotConstructed)
}

// RestaurantID returns the restaurant being queried.
func (q GetOrdersForTableQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// TableCode returns the table being queried.
func (q GetOrdersForTableQuery) TableCode() string {
	return q.tableCode
}

func (q *GetOrdersForTableQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	q.restaurantID = restaurantID
	return nil
}

func (q *GetOrdersForTableQuery) setTableCode(tableCode string) error {
	if tableCode == "" {
		return errs.NewValueIsRequiredError("tableCode")
	}

	q.tableCode = tableCode
	return nil
}
