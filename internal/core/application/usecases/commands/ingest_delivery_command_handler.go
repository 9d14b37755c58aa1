package commands

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// IngestDeliveryCommandHandler turns delivery-ready order events into
// unassigned delivery records.
//
// Intake is deliberately decoupled from matching: the handler only writes the
// record and returns, so event-processing latency never depends on driver
// lookup latency. The reconciliation sweep picks the record up on its next
// pass.
//
// Re-delivery of the same event is idempotent at the store: the first write
// wins and later attempts surface ports.ErrDuplicateOrder, which callers drop.
type IngestDeliveryCommandHandler struct {
	deliveryRepo ports.DeliveryRepository
	now          func() time.Time
}

// NewIngestDeliveryCommandHandler creates a handler for delivery intake.
func NewIngestDeliveryCommandHandler(deliveryRepo ports.DeliveryRepository) (IngestDeliveryCommandHandler, error) {
	if deliveryRepo == nil {
		return IngestDeliveryCommandHandler{}, errs.NewValueIsRequiredError("deliveryRepo")
	}

	return IngestDeliveryCommandHandler{
		deliveryRepo: deliveryRepo,
		now:          time.Now,
	}, nil
}

// Handle processes one intake command.
// Builds the delivery record with the current time as the dispatch timestamp
// (not the original order timestamp), item lines rendered as "Name xQty", and
// persists it unassigned. Returns ports.ErrDuplicateOrder when the order ID
// already exists.
func (h IngestDeliveryCommandHandler) Handle(ctx context.Context, cmd IngestDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]string, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		items = append(items, fmt.Sprintf("%s x%d", line.Name, line.Quantity))
	}

	record, err := delivery.NewDelivery(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.UserName(),
		cmd.UserPhone(),
		cmd.RestaurantID(),
		cmd.Address(),
		items,
		cmd.Total(),
		h.now(),
	)
	if err != nil {
		return err
	}

	return h.deliveryRepo.Add(ctx, record)
}
