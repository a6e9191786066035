package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersForTableQueryHandler serves the customer-facing table poll.
// Reads committed rows directly; staleness up to the client's polling
// interval is acceptable and expected.
type GetOrdersForTableQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForTableQueryHandler creates a handler for table order polls.
// Requires a GORM database connection for query execution.
func NewGetOrdersForTableQueryHandler(db *gorm.DB) GetOrdersForTableQueryHandler {
	return GetOrdersForTableQueryHandler{db: db}
}

// Handle executes the query and returns the table's orders, newest first.
func (h GetOrdersForTableQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForTableQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_code,
			items,
			total_amount,
			status,
			payment_method,
			note,
			customer_name,
			updated_by_name,
			confirmed_by_name,
			created_at,
			updated_at
		FROM orders
		WHERE restaurant_id = ? AND table_code = ?
		ORDER BY created_at DESC
	`, query.RestaurantID().Bytes(), query.TableCode()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderResponses(rows)
}
