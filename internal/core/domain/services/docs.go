// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the restaurant system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingService: Validates requested order lines against current menu
//     state and produces priced order items with a subtotal
//
// Domain services are pure: they operate on entities handed to them and leave
// persistence and transaction boundaries to the application layer.
package services
