package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// UpdateDeliveryCommandHandler overwrites one delivery record with the state
// carried by the command, keeping only the stored creation time.
type UpdateDeliveryCommandHandler struct {
	deliveryRepo ports.DeliveryRepository
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery updates.
func NewUpdateDeliveryCommandHandler(deliveryRepo ports.DeliveryRepository) (*UpdateDeliveryCommandHandler, error) {
	if deliveryRepo == nil {
		return nil, errs.NewValueIsRequiredError("deliveryRepo")
	}
	return &UpdateDeliveryCommandHandler{deliveryRepo: deliveryRepo}, nil
}

// Handle replaces the stored record with the command's state. The record must
// already exist; the rebuilt aggregate goes through the same validation as
// restoration from storage, so invalid states are rejected before persisting.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	existing, err := h.deliveryRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	p := cmd.Params()
	rec, err := delivery.RestoreDelivery(
		p.OrderID, p.UserID, p.UserName, p.UserPhone, p.RestaurantID, p.DeliveryAddress,
		p.OrderItems,
		p.Price,
		p.OrderDate, p.OrderTime,
		p.Status,
		p.DriverID, p.DriverName, p.DriverPhone,
		p.DriverRemark, p.UserRemark,
		existing.CreatedAt(),
	)
	if err != nil {
		return err
	}

	return h.deliveryRepo.Update(ctx, rec)
}
