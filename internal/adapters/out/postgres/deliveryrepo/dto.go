// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery record persistence. This package implements the repository
// pattern for the delivery aggregate, handling conversion between the domain
// model and its database representation.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
)

// DeliveryDTO represents the database structure for persisting delivery
// records. The order ID is the primary key; status and created_at are indexed
// because the reconciliation sweep selects on them.
type DeliveryDTO struct {
	OrderID         string   `gorm:"primaryKey"`
	UserID          string   `gorm:"index"`
	UserName        string
	UserPhone       string
	RestaurantID    string
	DeliveryAddress string
	OrderItems      []string `gorm:"serializer:json;type:jsonb"`
	Price           float64
	OrderDate       string
	OrderTime       string
	Status          int `gorm:"index"`
	DriverID        string
	DriverName      string
	DriverPhone     string
	DriverRemark    string
	UserRemark      string
	CreatedAt       time.Time `gorm:"index"`
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		OrderID:         aggregate.OrderID(),
		UserID:          aggregate.UserID(),
		UserName:        aggregate.UserName(),
		UserPhone:       aggregate.UserPhone(),
		RestaurantID:    aggregate.RestaurantID(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		OrderItems:      aggregate.OrderItems(),
		Price:           aggregate.Price(),
		OrderDate:       aggregate.OrderDate(),
		OrderTime:       aggregate.OrderTime(),
		Status:          int(aggregate.Status()),
		DriverID:        aggregate.DriverID(),
		DriverName:      aggregate.DriverName(),
		DriverPhone:     aggregate.DriverPhone(),
		DriverRemark:    aggregate.DriverRemark(),
		UserRemark:      aggregate.UserRemark(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back into a delivery aggregate, running
// the same validation as restoration from any other source.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	return delivery.RestoreDelivery(
		dto.OrderID, dto.UserID, dto.UserName, dto.UserPhone, dto.RestaurantID, dto.DeliveryAddress,
		dto.OrderItems,
		dto.Price,
		dto.OrderDate, dto.OrderTime,
		delivery.Status(dto.Status),
		dto.DriverID, dto.DriverName, dto.DriverPhone,
		dto.DriverRemark, dto.UserRemark,
		dto.CreatedAt,
	)
}
