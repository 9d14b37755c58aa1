// Package ports defines the contracts between the dispatch core and its
// infrastructure: the delivery record store and the three external driver
// services. These interfaces establish dependency inversion so command
// handlers can be tested against mocks and adapters swapped independently.
package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/delivery"
)

// ErrDuplicateOrder is returned by Add when a record with the same order ID
// already exists. First write wins; redelivered events must not create a
// second record or re-trigger assignment.
var ErrDuplicateOrder = errors.New("duplicate order")

// ErrAlreadyAssigned is returned by Assign when the stored record is no
// longer unassigned at write time. A concurrent sweep won the race; the
// losing attempt must treat the assignment as someone else's.
var ErrAlreadyAssigned = errors.New("delivery already assigned")

// DeliveryRepository defines the persistence contract for delivery records.
// The store is the single source of truth for assignment state; all writes
// are keyed by order ID.
type DeliveryRepository interface {
	// Add persists a new delivery record.
	// Returns ErrDuplicateOrder if a record with the same order ID exists.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update overwrites an existing record with the aggregate's full state.
	// There are no partial-field semantics. Returns an errs.ObjectNotFoundError
	// (unwrapping to errs.ErrObjectNotFound) if the record does not exist.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Assign persists the aggregate's driver assignment with a conditional
	// write: the stored record's driver fields and status are updated only if
	// the record is still unassigned at write time. Returns ErrAlreadyAssigned
	// when the condition fails, which is how a racing sweep instance learns it
	// lost. The aggregate must already be in Assigned status.
	Assign(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a record by order ID.
	Get(ctx context.Context, orderID string) (*delivery.Delivery, error)

	// GetAll retrieves every delivery record.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)

	// GetAllUnassigned retrieves the records the reconciliation sweep works
	// through, oldest first.
	GetAllUnassigned(ctx context.Context) ([]*delivery.Delivery, error)

	// Delete removes a record by order ID. Administrative operation; the
	// dispatch core itself never deletes records.
	Delete(ctx context.Context, orderID string) error
}
