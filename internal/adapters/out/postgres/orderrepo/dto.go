// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in a jsonb column: they are immutable snapshots owned by the
// order, never queried independently, so a child table would buy nothing.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID    uuid.UUID  `gorm:"type:uuid;index"`
	TableCode       string     `gorm:"type:text"`
	Items           []byte     `gorm:"type:jsonb"`
	TotalAmount     int64      `gorm:"type:bigint"`
	Status          int        `gorm:"index"`
	PaymentMethod   int        `gorm:""`
	Note            string     `gorm:"type:text"`
	CustomerName    string     `gorm:"type:text"`
	UpdatedBy       *uuid.UUID `gorm:"type:uuid"`
	UpdatedByName   string     `gorm:"type:text"`
	ConfirmedBy     *uuid.UUID `gorm:"type:uuid"`
	ConfirmedByName string     `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is the jsonb shape of a single line item.
// The field names are part of the persisted format; read models decode the
// same shape straight from the column.
type itemDTO struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := aggregate.Items()
	itemDTOs := make([]itemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemDTO{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Price:      item.Price(),
			Quantity:   item.Quantity(),
		})
	}

	itemsJSON, err := json.Marshal(itemDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	var updatedBy *uuid.UUID
	if id := aggregate.UpdatedBy(); id != nil {
		raw := id.Bytes()
		updatedBy = &raw
	}

	var confirmedBy *uuid.UUID
	if id := aggregate.ConfirmedBy(); id != nil {
		raw := id.Bytes()
		confirmedBy = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		TableCode:       aggregate.TableCode(),
		Items:           itemsJSON,
		TotalAmount:     aggregate.TotalAmount(),
		Status:          int(aggregate.Status()),
		PaymentMethod:   int(aggregate.PaymentMethod()),
		Note:            aggregate.Note(),
		CustomerName:    aggregate.CustomerName(),
		UpdatedBy:       updatedBy,
		UpdatedByName:   aggregate.UpdatedByName(),
		ConfirmedBy:     confirmedBy,
		ConfirmedByName: aggregate.ConfirmedByName(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including audit stamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var itemDTOs []itemDTO
	if err = json.Unmarshal(dto.Items, &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, d := range itemDTOs {
		item, itemErr := order.NewItem(d.MenuItemID, d.Name, d.Price, d.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var updatedBy *kernel.UUID
	if dto.UpdatedBy != nil {
		uID, byErr := kernel.UUIDFromBytes((*dto.UpdatedBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		updatedBy = &uID
	}

	var confirmedBy *kernel.UUID
	if dto.ConfirmedBy != nil {
		cID, byErr := kernel.UUIDFromBytes((*dto.ConfirmedBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		confirmedBy = &cID
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		RestaurantID:    restaurantID,
		TableCode:       dto.TableCode,
		Items:           items,
		Status:          order.Status(dto.Status),
		PaymentMethod:   order.PaymentMethod(dto.PaymentMethod),
		Note:            dto.Note,
		CustomerName:    dto.CustomerName,
		UpdatedBy:       updatedBy,
		UpdatedByName:   dto.UpdatedByName,
		ConfirmedBy:     confirmedBy,
		ConfirmedByName: dto.ConfirmedByName,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}
