// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence. Restaurants are reference data here: orders read
// them for existence checks and notification contacts.
package restaurantrepo

import (
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurant records.
type RestaurantDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:text"`
	Email string    `gorm:"type:text"`
	Phone string    `gorm:"type:text"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// toDomain converts a database DTO to a restaurant domain entity.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(id, dto.Name, dto.Email, dto.Phone)
}
