package commands

import (
	"context"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// MarkDeliveredCommandHandler moves an assigned delivery to Delivered and
// stores the closing remarks.
type MarkDeliveredCommandHandler struct {
	deliveryRepo ports.DeliveryRepository
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(deliveryRepo ports.DeliveryRepository) (*MarkDeliveredCommandHandler, error) {
	if deliveryRepo == nil {
		return nil, errs.NewValueIsRequiredError("deliveryRepo")
	}
	return &MarkDeliveredCommandHandler{deliveryRepo: deliveryRepo}, nil
}

// Handle completes the delivery. The aggregate rejects the transition unless
// the record is currently Assigned.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rec, err := h.deliveryRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := rec.MarkDelivered(cmd.DriverRemark(), cmd.UserRemark()); err != nil {
		return err
	}

	return h.deliveryRepo.Update(ctx, rec)
}
