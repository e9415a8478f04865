// Package order provides domain entities and business logic for order management
// in the restaurant system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, totals, and lifecycle
//   - Item: An immutable order line with the menu price frozen at order time
//   - Status: A state machine that enforces valid order status transitions
//   - Type: The Table/Online distinction with its conditional field rules
//
// Key business rules:
//   - Orders must have valid identifiers, at least one item, and consistent totals
//   - Status follows Pending -> Confirmed -> Preparing -> Ready -> Completed,
//     with Cancelled reachable from any non-terminal status
//   - Completed and Cancelled are terminal; no transition leaves them
//   - Table orders require a table number, Online orders a requested pickup time
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
