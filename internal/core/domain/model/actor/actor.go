// Package actor provides the identity value object for order mutations.
// An Actor carries who is acting (id, display name), with what authority
// (role), and over which restaurant (restaurant scope). Audit stamps on the
// Order aggregate are taken from the acting Actor; authorization decisions
// about an Actor are made by the services package.
package actor

import (
	"errors"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/errs"
	"tableorder/internal/pkg/guard"
)

var (
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

	// systemActorID is the reserved identity used by background jobs.
	systemActorID = kernel.MustUUIDFromString("00000000-0000-0000-0000-000000000001")
)

// SystemActorName is the audit display name recorded for mutations performed
// by background jobs rather than an authenticated person.
const SystemActorName = "system"

// Actor is the authenticated identity performing an order mutation.
// It is a value object: immutable, comparable by value, and always
// constructed through NewActor or SystemActor.
type Actor struct {
	id           kernel.UUID
	name         string
	role         Role
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewActor creates an Actor with validation.
// The id and restaurantID must be valid UUIDs, the name must not be empty,
// and the role must be a valid Role.
func NewActor(id kernel.UUID, name string, role Role, restaurantID kernel.UUID) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if name == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor name")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if err := restaurantID.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:           id,
		name:         name,
		role:         role,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// SystemActor returns the reserved background-job identity scoped to the
// given restaurant. It carries admin authority so jobs can apply any legal
// transition, and a fixed id so audit trails clearly mark automated mutations.
func SystemActor(restaurantID kernel.UUID) Actor {
	return Actor{
		id:           systemActorID,
		name:         SystemActorName,
		role:         RestaurantAdmin,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the Actor was created through a constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's unique identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Name returns the actor's display name, used for audit stamps.
func (a Actor) Name() string {
	return a.name
}

// Role returns the actor's operational authority.
func (a Actor) Role() Role {
	return a.role
}

// RestaurantID returns the restaurant the actor is scoped to.
func (a Actor) RestaurantID() kernel.UUID {
	return a.restaurantID
}

// WorksFor reports whether the actor's restaurant scope matches the given
// restaurant. Scope is checked before any role-based authorization.
func (a Actor) WorksFor(restaurantID kernel.UUID) bool {
	return a.restaurantID.IsEqual(restaurantID)
}
