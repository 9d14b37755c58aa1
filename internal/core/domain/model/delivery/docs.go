// Package delivery provides the domain entity and business rules for the
// dispatch lifecycle of one order. It implements the Delivery aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Delivery: The aggregate root holding the order snapshot, assignment
//     state and post-delivery remarks
//   - Status: A state machine that enforces valid lifecycle transitions
//
// Key business rules:
//   - The order identifier is globally unique and immutable once created
//   - Status follows a strict workflow: Unassigned -> Assigned -> Delivered
//   - There is no reassignment; a record assigned once stays with its driver
//   - Driver contact fields are populated exactly when the record is assigned
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
