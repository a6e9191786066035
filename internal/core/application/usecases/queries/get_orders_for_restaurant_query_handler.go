package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersForRestaurantQueryHandler serves the staff-side restaurant poll.
type GetOrdersForRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForRestaurantQueryHandler creates a handler for restaurant order polls.
// Requires a GORM database connection for query execution.
func NewGetOrdersForRestaurantQueryHandler(db *gorm.DB) GetOrdersForRestaurantQueryHandler {
	return GetOrdersForRestaurantQueryHandler{db: db}
}

// Handle executes the query and returns the restaurant's orders, newest first.
func (h GetOrdersForRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForRestaurantQuery,
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
		WHERE restaurant_id = ?
		ORDER BY created_at DESC
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderResponses(rows)
}

// scanOrderResponses maps order rows to the read model. Both order listing
// queries select the same column set, so they share this scan.
func scanOrderResponses(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id              uuid.UUID
			tableCode       string
			itemsJSON       []byte
			totalAmount     int64
			status          int
			paymentMethod   int
			note            sql.NullString
			customerName    sql.NullString
			updatedByName   sql.NullString
			confirmedByName sql.NullString
			createdAt       time.Time
			updatedAt       time.Time
		)

		if err := rows.Scan(
			&id,
			&tableCode,
			&itemsJSON,
			&totalAmount,
			&status,
			&paymentMethod,
			&note,
			&customerName,
			&updatedByName,
			&confirmedByName,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		var items []ItemResponse
		if err = json.Unmarshal(itemsJSON, &items); err != nil {
			return nil, err
		}

		resp := OrderResponse{
			ID:              orderID,
			TableCode:       tableCode,
			Items:           items,
			TotalAmount:     totalAmount,
			Status:          order.Status(status).String(),
			Note:            note.String,
			CustomerName:    customerName.String,
			UpdatedByName:   updatedByName.String,
			ConfirmedByName: confirmedByName.String,
			CreatedAt:       createdAt,
			UpdatedAt:       updatedAt,
		}

		// An unset payment method stays empty in the read model rather than
		// leaking the "UNKNOWN" placeholder.
		if pm := order.PaymentMethod(paymentMethod); pm.Validate() == nil {
			resp.PaymentMethod = pm.String()
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
