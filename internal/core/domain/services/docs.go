// Package services provides domain services for the table-order system:
// business decisions that span value objects from several packages and
// therefore don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TransitionAuthorizer: decides whether an actor role may apply a status
//     transition or edit an order's items
//
// Domain services are stateless and independently unit-testable, keeping
// role capability rules out of transport and routing code.
package services
