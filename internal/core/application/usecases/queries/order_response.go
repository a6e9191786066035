// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return plain response
// structures; they never load or mutate aggregates.
package queries

import (
	"time"

	"tableorder/internal/core/domain/model/kernel"
)

// OrderResponse is the read model of an order as exposed to polling clients.
// Status and payment method carry their wire names; amounts are in minor
// currency units.
type OrderResponse struct {
	ID              kernel.UUID
	TableCode       string
	Items           []ItemResponse
	TotalAmount     int64
	Status          string
	PaymentMethod   string
	Note            string
	CustomerName    string
	UpdatedByName   string
	ConfirmedByName string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ItemResponse is the read model of a single line item.
// The json tags match the persisted item snapshot layout.
type ItemResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}
