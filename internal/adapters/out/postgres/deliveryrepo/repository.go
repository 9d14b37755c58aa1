package deliveryrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
//
// Duplicate detection on Add relies on the connection being opened with
// gorm.Config{TranslateError: true}, which surfaces unique-constraint
// violations as gorm.ErrDuplicatedKey.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add saves a new delivery record. Returns ports.ErrDuplicateOrder when a
// record with the same order ID already exists; the first write wins.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDuplicateOrder
		}
		return err
	}

	return nil
}

// Update overwrites an existing record with the aggregate's full state.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("order_id = ?", dto.OrderID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", dto.OrderID)
	}

	return nil
}

// Assign persists a driver assignment with a conditional write: driver fields
// and status are updated only while the stored record is still unassigned.
// A concurrent assignment that commits first makes this call return
// ports.ErrAlreadyAssigned and write nothing.
func (r *GormDeliveryRepository) Assign(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("delivery %s has no driver to persist", aggregate.OrderID()))
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("order_id = ? AND status = ?", dto.OrderID, int(delivery.Unassigned)).
		Updates(map[string]any{
			"status":       dto.Status,
			"driver_id":    dto.DriverID,
			"driver_name":  dto.DriverName,
			"driver_phone": dto.DriverPhone,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrAlreadyAssigned
	}

	return nil
}

// Get retrieves a delivery record by order ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, orderID string) (*delivery.Delivery, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every delivery record, newest first.
func (r *GormDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllUnassigned retrieves the unassigned backlog, oldest first, which is
// the order the reconciliation sweep works through it.
func (r *GormDeliveryRepository) GetAllUnassigned(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(delivery.Unassigned)).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a delivery record by order ID.
func (r *GormDeliveryRepository) Delete(ctx context.Context, orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "order_id = ?", orderID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", orderID)
	}

	return nil
}

func toDomainSlice(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
