package queries

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetUnassignedDeliveriesQueryHandler retrieves the unassigned backlog,
// oldest first, matching the order the reconciliation sweep attempts records.
type GetUnassignedDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedDeliveriesQueryHandler creates a handler for backlog queries.
func NewGetUnassignedDeliveriesQueryHandler(db *gorm.DB) GetUnassignedDeliveriesQueryHandler {
	return GetUnassignedDeliveriesQueryHandler{db: db}
}

// Handle returns every record still waiting for a driver, oldest first.
func (h GetUnassignedDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE status = ?
		ORDER BY created_at ASC
	`, int(delivery.Unassigned)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanDelivery(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
