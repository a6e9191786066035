package actor

import (
	"fmt"

	"tableorder/internal/pkg/errs"
)

// Role represents the operational authority of an actor within a restaurant.
//
// Roles are a closed set:
//   - Staff may only confirm pending orders.
//   - RestaurantAdmin has full operational authority over orders of its restaurant.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// Staff is a waiter-level account. It may confirm freshly placed orders
	// and read the restaurant's order list, nothing more.
	Staff

	// RestaurantAdmin is the restaurant owner/manager account with full
	// operational authority over the restaurant's orders.
	RestaurantAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "UNKNOWN",
		Staff:           "STAFF",
		RestaurantAdmin: "RESTAURANT_ADMIN",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Staff:           "STAFF",
		RestaurantAdmin: "RESTAURANT_ADMIN",
	}
}

// RoleFromString parses a role from its wire representation ("STAFF",
// "RESTAURANT_ADMIN"). Returns an error for any other input.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: Staff, RestaurantAdmin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
// Returns "UNKNOWN" for invalid role values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
