package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ErrDispatchFailed indicates the driver-orders service rejected or failed to
// accept the task. The record stays unassigned and is retried on a later sweep.
var ErrDispatchFailed = errors.New("dispatch task submission failed")

// AssignDriverCommandHandler runs one assignment attempt: it looks up drivers
// working the delivery's city, picks the first one with spare capacity, submits
// a task to the driver-orders service and finally flips the record to assigned.
//
// The store update is last on purpose: a crash between submission and the
// update leaves a duplicate-looking task on the driver side, which is
// preferable to a record marked assigned with no task behind it.
type AssignDriverCommandHandler struct {
	deliveryRepo ports.DeliveryRepository
	directory    ports.DriverDirectory
	workload     ports.DriverWorkload
	notifier     ports.DispatchNotifier
	matcher      services.DriverMatcher
}

// NewAssignDriverCommandHandler creates a handler with all collaborators wired.
func NewAssignDriverCommandHandler(
	deliveryRepo ports.DeliveryRepository,
	directory ports.DriverDirectory,
	workload ports.DriverWorkload,
	notifier ports.DispatchNotifier,
	matcher services.DriverMatcher,
) (*AssignDriverCommandHandler, error) {
	if deliveryRepo == nil {
		return nil, errs.NewValueIsRequiredError("deliveryRepo")
	}
	if directory == nil {
		return nil, errs.NewValueIsRequiredError("directory")
	}
	if workload == nil {
		return nil, errs.NewValueIsRequiredError("workload")
	}
	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("notifier")
	}
	if matcher.Capacity() <= 0 {
		return nil, errs.NewValueIsRequiredError("matcher")
	}

	return &AssignDriverCommandHandler{
		deliveryRepo: deliveryRepo,
		directory:    directory,
		workload:     workload,
		notifier:     notifier,
		matcher:      matcher,
	}, nil
}

// Handle attempts to assign a driver to the delivery named by the command.
//
// Returns services.ErrNoDriverAvailable or services.ErrAllDriversAtCapacity
// when no candidate fits, ports.ErrAlreadyAssigned when the record is already
// taken (before or during the CAS update), and ErrDispatchFailed when the
// driver-orders service could not accept the task.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rec, err := h.deliveryRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if rec.IsAssigned() {
		return ports.ErrAlreadyAssigned
	}

	city, err := rec.City()
	if err != nil {
		return err
	}

	candidates, err := h.directory.DriversByCity(ctx, city)
	if err != nil {
		return fmt.Errorf("load drivers for city %q: %w", city, err)
	}

	matched, err := h.matcher.Match(ctx, rec, candidates, h.workload)
	if err != nil {
		return err
	}

	task, err := driver.NewTask(rec, matched.ID)
	if err != nil {
		return err
	}

	if err := h.notifier.Submit(ctx, task); err != nil {
		return fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	if err := rec.Assign(matched.ID, matched.Name, matched.Phone); err != nil {
		return err
	}

	return h.deliveryRepo.Assign(ctx, rec)
}
