package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryParams carries the full replacement state for one delivery
// record. The management API uses this to overwrite a record wholesale;
// creation time is never overwritten and is kept from the stored record.
type UpdateDeliveryParams struct {
	OrderID         string
	UserID          string
	UserName        string
	UserPhone       string
	RestaurantID    string
	DeliveryAddress string
	OrderItems      []string
	Price           float64
	OrderDate       string
	OrderTime       string
	Status          delivery.Status
	DriverID        string
	DriverName      string
	DriverPhone     string
	DriverRemark    string
	UserRemark      string
}

// UpdateDeliveryCommand requests a full overwrite of one delivery record.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	params UpdateDeliveryParams

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command from the replacement state.
// Field-level validation happens when the handler rebuilds the aggregate.
func NewUpdateDeliveryCommand(params UpdateDeliveryParams) (UpdateDeliveryCommand, error) {
	if params.OrderID == "" {
		return UpdateDeliveryCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return UpdateDeliveryCommand{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// OrderID returns the order key of the record to overwrite.
func (c UpdateDeliveryCommand) OrderID() string { return c.params.OrderID }

// Params returns the full replacement state.
func (c UpdateDeliveryCommand) Params() UpdateDeliveryParams { return c.params }
