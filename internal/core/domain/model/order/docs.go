// Package order provides domain entities and business logic for buy-back
// order management. It implements the Order aggregate root with lifecycle
// management, partner assignment and an append-only audit log.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, quote, assignment and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Actor: Identifies who performed an operation, recorded in every log entry
//
// Key business rules:
//   - Orders must have a valid unique identifier, customer phone and positive price
//   - The coin reward is computed once at creation and frozen for the life of the order
//   - Order status follows a defined workflow: new -> processing -> Completed/cancelled
//   - Only the assigned partner or pickup agent may requote, reschedule, cancel or complete
//   - Every state-changing operation appends exactly one log entry naming the actor
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
