package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery. This ensures all deliveries
// are properly validated.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the aggregate root tracking one order's dispatch lifecycle,
// from the moment an order leaves the restaurant until a driver confirms
// delivery.
//
// Delivery maintains these invariants:
//   - The order identifier is globally unique and immutable once created
//   - Status follows Unassigned -> Assigned -> Delivered, with no other
//     transition order
//   - Driver contact fields are empty exactly while the record is Unassigned
//   - Can only be created through NewDelivery or RestoreDelivery
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Delivery struct {
	// orderID is the unique key of the record
	orderID string

	// customer snapshot taken from the order event
	userID    string
	userName  string
	userPhone string

	restaurantID string

	// deliveryAddress is the canonical "street, city, state, postal" form
	deliveryAddress string

	// orderItems are display strings such as "Burger x2"
	orderItems []string

	price float64

	// orderDate and orderTime stamp when dispatch picked the order up,
	// not when the customer placed it
	orderDate string
	orderTime string

	status Status

	// driver fields, populated on assignment
	driverID    string
	driverName  string
	driverPhone string

	// remarks captured after delivery
	driverRemark string
	userRemark   string

	// createdAt supports backlog staleness reporting
	createdAt time.Time

	isConstructed bool
}

// NewDelivery creates a new unassigned Delivery record with validation.
// This is the entry point used by event intake: the record starts Unassigned,
// with no driver fields and no remarks.
//
// Parameters:
//   - orderID: unique order key (required)
//   - userID, userName, userPhone: customer snapshot (userID required)
//   - restaurantID: originating restaurant (required)
//   - address: validated delivery destination
//   - orderItems: display strings for the ordered items
//   - price: computed order total (must not be negative)
//   - now: dispatch pickup timestamp, stamped onto orderDate/orderTime
func NewDelivery(
	orderID, userID, userName, userPhone, restaurantID string,
	address kernel.Address,
	orderItems []string,
	price float64,
	now time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:        Unassigned,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setOrderID(orderID),
		d.setUserID(userID),
		d.setRestaurantID(restaurantID),
		d.setAddress(address),
		d.setPrice(price),
	); err != nil {
		return nil, err
	}

	d.userName = userName
	d.userPhone = userPhone
	d.orderItems = append([]string(nil), orderItems...)
	d.orderDate = now.Format("2006-01-02")
	d.orderTime = now.Format("15:04:05")

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
// Unlike NewDelivery it accepts the full stored state, including status,
// driver fields and remarks, and verifies the driver-field invariant.
func RestoreDelivery(
	orderID, userID, userName, userPhone, restaurantID, deliveryAddress string,
	orderItems []string,
	price float64,
	orderDate, orderTime string,
	status Status,
	driverID, driverName, driverPhone string,
	driverRemark, userRemark string,
	createdAt time.Time,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if status == Unassigned && driverID != "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("unassigned delivery %s carries driver %s", orderID, driverID))
	}
	if status != Unassigned && driverID == "" {
		return nil, errs.NewValueIsRequiredError("driverId")
	}

	return &Delivery{
		orderID:         orderID,
		userID:          userID,
		userName:        userName,
		userPhone:       userPhone,
		restaurantID:    restaurantID,
		deliveryAddress: deliveryAddress,
		orderItems:      append([]string(nil), orderItems...),
		price:           price,
		orderDate:       orderDate,
		orderTime:       orderTime,
		status:          status,
		driverID:        driverID,
		driverName:      driverName,
		driverPhone:     driverPhone,
		driverRemark:    driverRemark,
		userRemark:      userRemark,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Delivery instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their order identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.orderID == other.orderID
}

// OrderID returns the unique order key.
func (d *Delivery) OrderID() string { return d.orderID }

// UserID returns the customer's identifier.
func (d *Delivery) UserID() string { return d.userID }

// UserName returns the customer's contact name.
func (d *Delivery) UserName() string { return d.userName }

// UserPhone returns the customer's contact phone.
func (d *Delivery) UserPhone() string { return d.userPhone }

// RestaurantID returns the originating restaurant's identifier.
func (d *Delivery) RestaurantID() string { return d.restaurantID }

// DeliveryAddress returns the canonical formatted destination address.
func (d *Delivery) DeliveryAddress() string { return d.deliveryAddress }

// OrderItems returns a copy of the ordered item display strings.
func (d *Delivery) OrderItems() []string {
	return append([]string(nil), d.orderItems...)
}

// Price returns the computed order total.
func (d *Delivery) Price() float64 { return d.price }

// OrderDate returns the dispatch pickup date (format 2006-01-02).
func (d *Delivery) OrderDate() string { return d.orderDate }

// OrderTime returns the dispatch pickup time (format 15:04:05).
func (d *Delivery) OrderTime() string { return d.orderTime }

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status { return d.status }

// IsAssigned reports whether a driver has accepted this delivery.
func (d *Delivery) IsAssigned() bool { return d.status != Unassigned }

// IsDelivered reports whether the delivery completed.
func (d *Delivery) IsDelivered() bool { return d.status == Delivered }

// DriverID returns the assigned driver's identifier, empty while Unassigned.
func (d *Delivery) DriverID() string { return d.driverID }

// DriverName returns the assigned driver's name, empty while Unassigned.
func (d *Delivery) DriverName() string { return d.driverName }

// DriverPhone returns the assigned driver's phone, empty while Unassigned.
func (d *Delivery) DriverPhone() string { return d.driverPhone }

// DriverRemark returns the driver's post-delivery remark.
func (d *Delivery) DriverRemark() string { return d.driverRemark }

// UserRemark returns the customer's post-delivery remark.
func (d *Delivery) UserRemark() string { return d.userRemark }

// CreatedAt returns when the record entered the dispatch system.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// City extracts the destination city from the delivery address.
// Matching uses this value to query the driver directory.
func (d *Delivery) City() (string, error) {
	return kernel.CityOf(d.deliveryAddress)
}

// Assign records the accepted driver and moves the delivery to Assigned.
//
// Business rules enforced:
//   - The driver identifier must be non-empty
//   - The delivery must currently be Unassigned; there is no reassignment
//
// After a successful call the driver contact fields are populated and the
// record can only move forward to Delivered.
func (d *Delivery) Assign(driverID, driverName, driverPhone string) error {
	if strings.TrimSpace(driverID) == "" {
		return errs.NewValueIsRequiredError("driverId")
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.driverID = driverID
	d.driverName = driverName
	d.driverPhone = driverPhone
	return nil
}

// MarkDelivered completes the delivery and records the closing remarks.
// The delivery must be in Assigned status; Delivered is final.
func (d *Delivery) MarkDelivered(driverRemark, userRemark string) error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.driverRemark = driverRemark
	d.userRemark = userRemark
	return nil
}

// setOrderID validates and sets the unique order key.
// This is a private method used only during construction.
func (d *Delivery) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	d.orderID = orderID
	return nil
}

// setUserID validates and sets the customer identifier.
// This is a private method used only during construction.
func (d *Delivery) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	d.userID = userID
	return nil
}

// setRestaurantID validates and sets the restaurant identifier.
// This is a private method used only during construction.
func (d *Delivery) setRestaurantID(restaurantID string) error {
	if strings.TrimSpace(restaurantID) == "" {
		return errs.NewValueIsRequiredError("restaurantId")
	}
	d.restaurantID = restaurantID
	return nil
}

// setAddress validates the destination and stores its canonical formatting.
// This is a private method used only during construction.
func (d *Delivery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.deliveryAddress = address.Format()
	return nil
}

// setPrice validates and sets the order total.
// Price must not be negative. This is a private method used only during construction.
func (d *Delivery) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%f is negative", price))
	}
	d.price = price
	return nil
}
