package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveryByOrderIDQueryIsNotConstructed = errors.New(
	"GetDeliveryByOrderIDQuery must be created via NewGetDeliveryByOrderIDQuery constructor",
)

// GetDeliveryByOrderIDQuery retrieves one delivery record by its order key.
type GetDeliveryByOrderIDQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetDeliveryByOrderIDQuery creates a query for a single delivery record.
func NewGetDeliveryByOrderIDQuery(orderID string) (GetDeliveryByOrderIDQuery, error) {
	if orderID == "" {
		return GetDeliveryByOrderIDQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetDeliveryByOrderIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryByOrderIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByOrderIDQueryIsNotConstructed)
}

// OrderID returns the order key being looked up.
func (q GetDeliveryByOrderIDQuery) OrderID() string { return q.orderID }
