package queries

import (
	"errors"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/guard"
)

var ErrGetOrdersForRestaurantQueryIsNotConstructed = errors.New(
	"GetOrdersForRestaurantQuery must be created via NewGetOrdersForRestaurantQuery constructor",
)

// GetOrdersForRestaurantQuery retrieves every order of a restaurant, newest
// first. This is the staff-side polling read backing the order dashboard.
type GetOrdersForRestaurantQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersForRestaurantQuery creates a query for a restaurant's orders.
// The restaurant id must be valid.
func NewGetOrdersForRestaurantQuery(restaurantID kernel.UUID) (GetOrdersForRestaurantQuery, error) {
	query := GetOrdersForRestaurantQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRestaurantID(restaurantID); err != nil {
		return GetOrdersForRestaurantQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersForRestaurantQueryIsNotConstructed if validation fails.
func (q GetOrdersForRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the restaurant being queried.
func (q GetOrdersForRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q *GetOrdersForRestaurantQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	q.restaurantID = restaurantID
	return nil
}
