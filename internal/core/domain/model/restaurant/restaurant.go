// Package restaurant provides the Restaurant aggregate. Within this service a
// restaurant is little more than identity plus the contact details carried in
// order notifications; menu and account management live elsewhere.
package restaurant

import (
	"errors"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/errs"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant holds the identity and contact information of a restaurant.
// Orders reference restaurants by ID; the contact fields travel with the
// order-created notification so the kitchen side knows where to reach out.
type Restaurant struct {
	id    kernel.UUID
	name  string
	email string
	phone string

	isConstructed bool
}

// NewRestaurant creates a Restaurant with validation.
// The id must be a valid UUID and the name must not be empty;
// email and phone are optional contact details.
func NewRestaurant(id kernel.UUID, name, email, phone string) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("restaurant name")
	}

	return &Restaurant{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// Validate ensures the Restaurant was created through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Email returns the restaurant's contact email, possibly empty.
func (r *Restaurant) Email() string {
	return r.email
}

// Phone returns the restaurant's contact phone, possibly empty.
func (r *Restaurant) Phone() string {
	return r.phone
}
