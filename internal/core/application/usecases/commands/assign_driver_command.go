package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand requests one assignment attempt for a single delivery
// record. The reconciliation sweep issues one of these per unassigned record;
// operators can also trigger one directly for a stuck order.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand("O1")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoDriverAvailable):
//	    // nobody serves this city right now; retried next sweep
//	case errors.Is(err, ports.ErrAlreadyAssigned):
//	    // another sweep instance got there first; nothing to do
//	case err != nil:
//	    return err
//	}
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to attempt assignment of one delivery.
func NewAssignDriverCommand(orderID string) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the order key of the delivery to assign.
func (c AssignDriverCommand) OrderID() string { return c.orderID }

func (c *AssignDriverCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}
