package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
	"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
)

// DeleteDeliveryCommand removes one delivery record entirely.
type DeleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewDeleteDeliveryCommand creates a command to delete one delivery record.
func NewDeleteDeliveryCommand(orderID string) (DeleteDeliveryCommand, error) {
	if orderID == "" {
		return DeleteDeliveryCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return DeleteDeliveryCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the order key of the record to delete.
func (c DeleteDeliveryCommand) OrderID() string { return c.orderID }
