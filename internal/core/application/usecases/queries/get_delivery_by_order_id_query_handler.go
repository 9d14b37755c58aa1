package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryByOrderIDQueryHandler retrieves a single delivery record.
type GetDeliveryByOrderIDQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByOrderIDQueryHandler creates a handler for single-record lookups.
func NewGetDeliveryByOrderIDQueryHandler(db *gorm.DB) GetDeliveryByOrderIDQueryHandler {
	return GetDeliveryByOrderIDQueryHandler{db: db}
}

// Handle returns the record for the query's order ID, or an
// errs.ObjectNotFoundError when no such record exists.
func (h GetDeliveryByOrderIDQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByOrderIDQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return scanDelivery(rows)
}
