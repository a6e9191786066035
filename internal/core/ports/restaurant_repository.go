package ports

import (
	"context"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/restaurant"
)

// RestaurantRepository provides read access to restaurant identity and
// contact info. Restaurant management itself lives outside this service;
// orders only need to verify existence and fetch notification contacts.
type RestaurantRepository interface {
	// Get retrieves a restaurant by its unique identifier.
	// Returns an ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
