// Package kafka contains the inbound messaging adapter: a consumer group
// that turns order-lifecycle events into delivery intake commands.
//
// The adapter only ever invokes intake. Matching is never triggered from
// here; the reconciliation sweep owns that.
package kafka

import "encoding/json"

// OrderEvent is the order-lifecycle event published by the ordering system.
// Only events with EventType "ORDER_OUT_FOR_DELIVERY" concern dispatch;
// everything else is acknowledged and dropped.
type OrderEvent struct {
	EventType    string          `json:"eventType"`
	OrderID      string          `json:"orderId"`
	UserID       json.Number     `json:"userId"`
	ContactName  string          `json:"contactName"`
	ContactPhone string          `json:"contactPhone"`
	RestaurantID string          `json:"restaurantId"`
	Street       string          `json:"street"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	PostalCode   string          `json:"postalCode"`
	Items        []OrderItemInfo `json:"items"`
	Total        float64         `json:"total"`
}

// OrderItemInfo is one ordered line within an OrderEvent.
type OrderItemInfo struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
