package commands

import (
	"context"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// DeleteDeliveryCommandHandler removes a delivery record from storage.
type DeleteDeliveryCommandHandler struct {
	deliveryRepo ports.DeliveryRepository
}

// NewDeleteDeliveryCommandHandler creates a handler for delivery deletion.
func NewDeleteDeliveryCommandHandler(deliveryRepo ports.DeliveryRepository) (*DeleteDeliveryCommandHandler, error) {
	if deliveryRepo == nil {
		return nil, errs.NewValueIsRequiredError("deliveryRepo")
	}
	return &DeleteDeliveryCommandHandler{deliveryRepo: deliveryRepo}, nil
}

// Handle deletes the record. Deleting an unknown order is reported as not found.
func (h *DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.deliveryRepo.Delete(ctx, cmd.OrderID())
}
