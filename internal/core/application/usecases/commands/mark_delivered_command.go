package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand records delivery completion for one order together
// with the closing remarks from both sides.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	driverRemark string
	userRemark   string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a completion command. Remarks may be empty.
func NewMarkDeliveredCommand(orderID, driverRemark, userRemark string) (MarkDeliveredCommand, error) {
	if orderID == "" {
		return MarkDeliveredCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return MarkDeliveredCommand{
		orderID:      orderID,
		driverRemark: driverRemark,
		userRemark:   userRemark,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the order key of the completed delivery.
func (c MarkDeliveredCommand) OrderID() string { return c.orderID }

// DriverRemark returns the driver's closing remark.
func (c MarkDeliveredCommand) DriverRemark() string { return c.driverRemark }

// UserRemark returns the customer's closing remark.
func (c MarkDeliveredCommand) UserRemark() string { return c.userRemark }
