// Package order provides domain entities and business logic for dine-in order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, totals, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Item: An immutable menu snapshot captured into an order at creation or edit time
//   - PaymentMethod: A settlement label set only when an order is completed
//
// Key business rules:
//   - Orders must reference a valid restaurant and a non-empty table code
//   - The total amount always equals the sum of price times quantity over the items
//   - Order status follows a defined workflow: Pending -> Confirmed -> Served -> Completed,
//     with cancellation possible from Pending and Confirmed
//   - Completed and Cancelled are terminal: such orders are immutable history
//   - Every mutation stamps the acting identity; confirmation carries its own stamp
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
