package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetUnassignedDeliveriesQueryIsNotConstructed = errors.New(
	"GetUnassignedDeliveriesQuery must be created via NewGetUnassignedDeliveriesQuery constructor",
)

// GetUnassignedDeliveriesQuery retrieves the records still waiting for a
// driver, oldest first. This is the backlog the reconciliation sweep works
// through, exposed for operators.
type GetUnassignedDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedDeliveriesQuery creates a query for the unassigned backlog.
func NewGetUnassignedDeliveriesQuery() GetUnassignedDeliveriesQuery {
	return GetUnassignedDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedDeliveriesQueryIsNotConstructed)
}
