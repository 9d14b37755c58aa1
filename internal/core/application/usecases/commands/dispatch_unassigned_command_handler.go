package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Sweep outcome labels reported to SweepMetrics.
const (
	ResultAssigned        = "assigned"
	ResultNoDriver        = "no_driver"
	ResultAtCapacity      = "at_capacity"
	ResultAlreadyAssigned = "already_assigned"
	ResultDispatchFailed  = "dispatch_failed"
	ResultError           = "error"
)

const defaultSweepWorkers = 4

// DeliveryAssigner runs a single assignment attempt. Satisfied by
// AssignDriverCommandHandler.
type DeliveryAssigner interface {
	Handle(ctx context.Context, cmd AssignDriverCommand) error
}

// SweepMetrics receives counters and gauges produced by a sweep. A nil-safe
// no-op implementation is acceptable for tests.
type SweepMetrics interface {
	SweepStarted()
	AssignmentResult(result string)
	SetUnassignedBacklog(count int)
	SetOldestUnassignedAge(age time.Duration)
}

// DispatchUnassignedCommandHandler runs the reconciliation sweep: it loads
// every unassigned record oldest-first and attempts each one through the
// assigner on a bounded worker pool. Records are independent, so one failure
// never stops the sweep.
type DispatchUnassignedCommandHandler struct {
	deliveryRepo ports.DeliveryRepository
	assigner     DeliveryAssigner
	metrics      SweepMetrics
	workers      int
	logger       *slog.Logger
}

// NewDispatchUnassignedCommandHandler creates a sweep handler. A non-positive
// workers value falls back to a small default pool.
func NewDispatchUnassignedCommandHandler(
	deliveryRepo ports.DeliveryRepository,
	assigner DeliveryAssigner,
	metrics SweepMetrics,
	workers int,
	logger *slog.Logger,
) (*DispatchUnassignedCommandHandler, error) {
	if deliveryRepo == nil {
		return nil, errs.NewValueIsRequiredError("deliveryRepo")
	}
	if assigner == nil {
		return nil, errs.NewValueIsRequiredError("assigner")
	}
	if metrics == nil {
		return nil, errs.NewValueIsRequiredError("metrics")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if workers <= 0 {
		workers = defaultSweepWorkers
	}

	return &DispatchUnassignedCommandHandler{
		deliveryRepo: deliveryRepo,
		assigner:     assigner,
		metrics:      metrics,
		workers:      workers,
		logger:       logger,
	}, nil
}

// Handle performs one sweep. It returns an error only when the backlog itself
// cannot be loaded; per-record outcomes are logged and counted instead.
func (h *DispatchUnassignedCommandHandler) Handle(ctx context.Context, cmd DispatchUnassignedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.metrics.SweepStarted()

	records, err := h.deliveryRepo.GetAllUnassigned(ctx)
	if err != nil {
		return err
	}

	h.metrics.SetUnassignedBacklog(len(records))
	if len(records) > 0 {
		h.metrics.SetOldestUnassignedAge(time.Since(records[0].CreatedAt()))
	} else {
		h.metrics.SetOldestUnassignedAge(0)
		return nil
	}

	sem := make(chan struct{}, h.workers)
	var wg sync.WaitGroup

	for _, rec := range records {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(orderID string) {
			defer wg.Done()
			defer func() { <-sem }()
			h.attempt(ctx, orderID)
		}(rec.OrderID())
	}

	wg.Wait()
	return nil
}

func (h *DispatchUnassignedCommandHandler) attempt(ctx context.Context, orderID string) {
	assignCmd, err := NewAssignDriverCommand(orderID)
	if err != nil {
		h.metrics.AssignmentResult(ResultError)
		h.logger.Error("build assign command", "orderId", orderID, "error", err)
		return
	}

	err = h.assigner.Handle(ctx, assignCmd)
	result := classify(err)
	h.metrics.AssignmentResult(result)

	switch result {
	case ResultAssigned:
		h.logger.Info("delivery assigned", "orderId", orderID)
	case ResultNoDriver, ResultAtCapacity, ResultAlreadyAssigned:
		h.logger.Debug("delivery not assigned", "orderId", orderID, "reason", result)
	default:
		h.logger.Error("assignment attempt failed", "orderId", orderID, "error", err)
	}
}

func classify(err error) string {
	switch {
	case err == nil:
		return ResultAssigned
	case errors.Is(err, services.ErrNoDriverAvailable):
		return ResultNoDriver
	case errors.Is(err, services.ErrAllDriversAtCapacity):
		return ResultAtCapacity
	case errors.Is(err, ports.ErrAlreadyAssigned):
		return ResultAlreadyAssigned
	case errors.Is(err, ErrDispatchFailed):
		return ResultDispatchFailed
	default:
		return ResultError
	}
}
