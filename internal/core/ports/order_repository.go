package ports

import (
	"context"
	"time"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// The implementation owns the table-exclusivity guarantee: for any
// (restaurant, table code) pair at most one order in an active status exists,
// enforced atomically by the storage layer rather than by callers sequencing
// a check before an insert.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// If the order's table already holds an active order, Add fails with a
	// ConflictError and nothing is inserted. The existence check and the
	// insert are a single atomic operation; under concurrent callers for the
	// same table exactly one Add wins.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, conditional on the
	// persisted status still being expectedStatus. A concurrent writer that
	// moved the order to another status first causes a ConflictError, so two
	// racing transitions from the same source state cannot both succeed.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingBefore retrieves orders still in Pending status whose
	// creation time is before the cutoff. Used by the stale-order sweeper.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
