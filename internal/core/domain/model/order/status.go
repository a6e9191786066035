package order

import (
	"fmt"

	"tableorder/internal/pkg/errs"
)

// Status represents the lifecycle state of a dine-in order.
// It implements a state machine with an explicit adjacency table so that
// illegal transitions are rejected in one place instead of string checks
// scattered across handlers.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Served ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no edge leads out of them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer places an order.
	// The order is waiting for staff confirmation.
	Pending

	// Confirmed indicates staff accepted the order and the kitchen is working on it.
	Confirmed

	// Served indicates the food reached the table.
	Served

	// Completed indicates the order was settled. Terminal.
	Completed

	// Cancelled indicates the order was abandoned before serving. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Served:    "SERVED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Served:    "SERVED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// getTransitions is the adjacency table of the order state machine.
// An edge missing from this table is illegal, with no exceptions:
// no skipping ahead, no moving backward, no leaving a terminal state.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Served, Cancelled},
		Served:    {Completed},
		Completed: {},
		Cancelled: {},
	}
}

// StatusFromString parses a status from its wire representation
// ("PENDING", "CONFIRMED", "SERVED", "COMPLETED", "CANCELLED").
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// ActiveStatuses returns the statuses under which an order keeps its table
// occupied: Pending, Confirmed, and Served. An order in any other status has
// released its table slot.
func ActiveStatuses() []Status {
	return []Status{Pending, Confirmed, Served}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Served, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
// Returns "UNKNOWN" for invalid status values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status is final.
// Terminal orders are immutable history: no further transition and no item or
// note edit is legal once a status is terminal.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether an order in this status occupies its table.
func (s Status) IsActive() bool {
	for _, active := range ActiveStatuses() {
		if s == active {
			return true
		}
	}
	return false
}

// CanTransitionTo checks whether the edge from s to target exists in the
// state machine, without performing the transition.
//
// Returns a ConflictError if the edge is illegal. Applying the same illegal
// transition any number of times yields the same error and never a state
// change.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	for _, next := range getTransitions()[s] {
		if next == target {
			return nil
		}
	}

	return errs.NewConflictErrorWithCause(
		"status transition is not allowed",
		fmt.Errorf("cannot transition from %s to %s", s.String(), target.String()),
	)
}

// TransitionTo returns the new status after following the edge to target.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, error) if the edge does not exist in the state machine
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return 0, err
	}

	return target, nil
}
