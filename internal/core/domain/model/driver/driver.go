// Package driver provides read models for the external driver services.
// Driver profiles are owned by the driver registry and tasks by the driver
// order service; the dispatch core only reads profiles and writes tasks, so
// both are plain value types rather than aggregates.
package driver

import (
	"strings"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"
)

// Driver is a read-only snapshot of a driver profile served by the driver
// directory. WorkingCity is the eligibility key: a driver only receives
// deliveries destined for the city they serve.
type Driver struct {
	ID          string
	Name        string
	Phone       string
	WorkingCity string
}

// Validate checks that the directory returned a usable profile.
// A driver without an identifier or working city can never be matched.
func (d Driver) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errs.NewValueIsRequiredError("driverId")
	}
	if strings.TrimSpace(d.WorkingCity) == "" {
		return errs.NewValueIsRequiredError("workingCity")
	}
	return nil
}

// Task is the unit of work handed to a driver's open-task queue once a
// delivery is assigned. It carries the full delivery snapshot so the driver
// service needs no callback to dispatch.
type Task struct {
	DriverID        string
	OrderID         string
	UserID          string
	UserName        string
	RestaurantID    string
	DeliveryAddress string
	OrderItems      []string
	Price           float64
	OrderDate       string
	OrderTime       string
	IsOrderComplete bool
	Remarks         string
}

// NewTask builds the downstream task for assigning a delivery to a driver.
// The task always starts incomplete with an empty remark placeholder.
func NewTask(d *delivery.Delivery, driverID string) (Task, error) {
	if err := d.Validate(); err != nil {
		return Task{}, err
	}
	if strings.TrimSpace(driverID) == "" {
		return Task{}, errs.NewValueIsRequiredError("driverId")
	}

	return Task{
		DriverID:        driverID,
		OrderID:         d.OrderID(),
		UserID:          d.UserID(),
		UserName:        d.UserName(),
		RestaurantID:    d.RestaurantID(),
		DeliveryAddress: d.DeliveryAddress(),
		OrderItems:      d.OrderItems(),
		Price:           d.Price(),
		OrderDate:       d.OrderDate(),
		OrderTime:       d.OrderTime(),
		IsOrderComplete: false,
		Remarks:         "",
	}, nil
}
