// Package commands contains business operations that modify dispatch state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: constructor validation, domain
// logic, and persistence through the ports.
package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// EventOrderOutForDelivery is the only order-lifecycle event type the
// dispatch core reacts to. Events with any other type are ignored, not errors.
const EventOrderOutForDelivery = "ORDER_OUT_FOR_DELIVERY"

var ErrIngestDeliveryCommandIsNotConstructed = errors.New(
	"IngestDeliveryCommand must be created via NewIngestDeliveryCommand constructor",
)

// OrderLine is one ordered item as carried by the inbound event.
type OrderLine struct {
	Name     string
	Quantity int
}

// IngestDeliveryCommand represents a normalized "order out for delivery"
// event ready to become a delivery record. The messaging adapter constructs
// one command per matching event; events of other types never reach this
// command.
//
// Example:
//
//	addr, _ := kernel.NewAddress("12 Galle Rd", "Colombo", "Western", "00300")
//	cmd, err := NewIngestDeliveryCommand("O1", "U1", "Alice", "+9411", "R1",
//	    addr, []OrderLine{{Name: "Burger", Quantity: 2}}, 12.50)
//	if err != nil {
//	    return fmt.Errorf("invalid order event: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil && !errors.Is(err, ports.ErrDuplicateOrder) {
//	    return err
//	}
type IngestDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	userID       string
	userName     string
	userPhone    string
	restaurantID string
	address      kernel.Address
	items        []OrderLine
	total        float64

	guard guard.ConstructorGuard
}

// NewIngestDeliveryCommand creates a command to ingest one delivery-ready order.
// Validates that the order, user and restaurant identifiers are present, the
// address was properly constructed, and the total is not negative.
func NewIngestDeliveryCommand(
	orderID, userID, userName, userPhone, restaurantID string,
	address kernel.Address,
	items []OrderLine,
	total float64,
) (IngestDeliveryCommand, error) {
	cmd := IngestDeliveryCommand{
		userName:  userName,
		userPhone: userPhone,
		items:     append([]OrderLine(nil), items...),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setRestaurantID(restaurantID),
		cmd.setAddress(address),
		cmd.setTotal(total),
	); err != nil {
		return IngestDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IngestDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrIngestDeliveryCommandIsNotConstructed)
}

// OrderID returns the unique order key.
func (c IngestDeliveryCommand) OrderID() string { return c.orderID }

// UserID returns the customer's identifier.
func (c IngestDeliveryCommand) UserID() string { return c.userID }

// UserName returns the customer's contact name.
func (c IngestDeliveryCommand) UserName() string { return c.userName }

// UserPhone returns the customer's contact phone.
func (c IngestDeliveryCommand) UserPhone() string { return c.userPhone }

// RestaurantID returns the originating restaurant's identifier.
func (c IngestDeliveryCommand) RestaurantID() string { return c.restaurantID }

// Address returns the validated delivery destination.
func (c IngestDeliveryCommand) Address() kernel.Address { return c.address }

// Items returns the ordered lines.
func (c IngestDeliveryCommand) Items() []OrderLine {
	return append([]OrderLine(nil), c.items...)
}

// Total returns the computed order total.
func (c IngestDeliveryCommand) Total() float64 { return c.total }

func (c *IngestDeliveryCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *IngestDeliveryCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *IngestDeliveryCommand) setRestaurantID(restaurantID string) error {
	if restaurantID == "" {
		return errs.NewValueIsRequiredError("restaurantId")
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *IngestDeliveryCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *IngestDeliveryCommand) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%f is negative", total))
	}
	c.total = total
	return nil
}
