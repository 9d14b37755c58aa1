package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
)

// Error is the uniform error payload for the management API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one ordered item in a create request.
type OrderLineRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateDeliveryRequest creates a delivery record through the management API,
// mirroring what event intake would have built from an order event.
type CreateDeliveryRequest struct {
	OrderID      string             `json:"orderId"`
	UserID       string             `json:"userId"`
	UserName     string             `json:"userName"`
	UserPhone    string             `json:"userPhoneNo"`
	RestaurantID string             `json:"restaurantId"`
	Street       string             `json:"street"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	PostalCode   string             `json:"postalCode"`
	OrderItems   []OrderLineRequest `json:"orderItems"`
	Price        float64            `json:"price"`
}

// UpdateDeliveryRequest overwrites a delivery record wholesale.
type UpdateDeliveryRequest struct {
	UserID          string   `json:"userId"`
	UserName        string   `json:"userName"`
	UserPhone       string   `json:"userPhoneNo"`
	RestaurantID    string   `json:"restaurantId"`
	DeliveryAddress string   `json:"deliveryAddress"`
	OrderItems      []string `json:"orderItems"`
	Price           float64  `json:"price"`
	OrderDate       string   `json:"orderDate"`
	OrderTime       string   `json:"orderTime"`
	Status          string   `json:"status"`
	DriverID        string   `json:"driverId"`
	DriverName      string   `json:"driverName"`
	DriverPhone     string   `json:"driverPhoneNo"`
	DriverRemark    string   `json:"driverRemark"`
	UserRemark      string   `json:"userRemark"`
}

// MarkDeliveredRequest records delivery completion with closing remarks.
type MarkDeliveredRequest struct {
	DriverRemark string `json:"driverRemark"`
	UserRemark   string `json:"userRemark"`
}

// DeliveryResponse is the management API's view of one delivery record.
type DeliveryResponse struct {
	OrderID         string    `json:"orderId"`
	UserID          string    `json:"userId"`
	UserName        string    `json:"userName"`
	UserPhone       string    `json:"userPhoneNo"`
	RestaurantID    string    `json:"restaurantId"`
	DeliveryAddress string    `json:"deliveryAddress"`
	OrderItems      []string  `json:"orderItems"`
	Price           float64   `json:"price"`
	OrderDate       string    `json:"orderDate"`
	OrderTime       string    `json:"orderTime"`
	Status          string    `json:"status"`
	IsAssignDriver  bool      `json:"isAssignDriver"`
	DriverID        string    `json:"driverId"`
	DriverName      string    `json:"driverName"`
	DriverPhone     string    `json:"driverPhoneNo"`
	DriverRemark    string    `json:"driverRemark"`
	UserRemark      string    `json:"userRemark"`
	IsDelivered     bool      `json:"isOrderDeliveredComplete"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toDeliveryResponse(r queries.DeliveryResponse) DeliveryResponse {
	return DeliveryResponse{
		OrderID:         r.OrderID,
		UserID:          r.UserID,
		UserName:        r.UserName,
		UserPhone:       r.UserPhone,
		RestaurantID:    r.RestaurantID,
		DeliveryAddress: r.DeliveryAddress,
		OrderItems:      r.OrderItems,
		Price:           r.Price,
		OrderDate:       r.OrderDate,
		OrderTime:       r.OrderTime,
		Status:          r.Status.String(),
		IsAssignDriver:  r.IsAssigned(),
		DriverID:        r.DriverID,
		DriverName:      r.DriverName,
		DriverPhone:     r.DriverPhone,
		DriverRemark:    r.DriverRemark,
		UserRemark:      r.UserRemark,
		IsDelivered:     r.IsDelivered(),
		CreatedAt:       r.CreatedAt,
	}
}

func toDeliveryResponses(rs []queries.DeliveryResponse) []DeliveryResponse {
	responses := make([]DeliveryResponse, len(rs))
	for i, r := range rs {
		responses[i] = toDeliveryResponse(r)
	}
	return responses
}
