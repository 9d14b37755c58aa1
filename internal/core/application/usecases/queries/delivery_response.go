// Package queries contains read operations for retrieving dispatch state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregate and read optimized models straight from the
// database.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/delivery"
)

// DeliveryResponse is the read model for one delivery record.
// Driver fields and remarks are empty strings until the corresponding
// lifecycle step has happened.
type DeliveryResponse struct {
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
	CreatedAt       time.Time
}

// IsAssigned reports whether a driver holds this delivery.
func (r DeliveryResponse) IsAssigned() bool {
	return r.Status != delivery.Unassigned
}

// IsDelivered reports whether the delivery completed.
func (r DeliveryResponse) IsDelivered() bool {
	return r.Status == delivery.Delivered
}

// deliveryColumns is the select list shared by the delivery queries.
// Order must match scanDelivery.
const deliveryColumns = `
	order_id,
	user_id,
	user_name,
	user_phone,
	restaurant_id,
	delivery_address,
	order_items,
	price,
	order_date,
	order_time,
	status,
	driver_id,
	driver_name,
	driver_phone,
	driver_remark,
	user_remark,
	created_at`

func scanDelivery(rows *sql.Rows) (DeliveryResponse, error) {
	var resp DeliveryResponse
	var items string
	var status int

	err := rows.Scan(
		&resp.OrderID,
		&resp.UserID,
		&resp.UserName,
		&resp.UserPhone,
		&resp.RestaurantID,
		&resp.DeliveryAddress,
		&items,
		&resp.Price,
		&resp.OrderDate,
		&resp.OrderTime,
		&status,
		&resp.DriverID,
		&resp.DriverName,
		&resp.DriverPhone,
		&resp.DriverRemark,
		&resp.UserRemark,
		&resp.CreatedAt,
	)
	if err != nil {
		return DeliveryResponse{}, err
	}

	resp.Status = delivery.Status(status)
	if items != "" {
		if err := json.Unmarshal([]byte(items), &resp.OrderItems); err != nil {
			return DeliveryResponse{}, err
		}
	}

	return resp, nil
}
