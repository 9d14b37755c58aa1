package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// DriverDirectory queries the external driver registry.
// Every call is a blocking network request; adapters impose a request timeout
// and surface timeouts as ordinary errors, which matching treats as transient.
type DriverDirectory interface {
	// DriversByCity returns the drivers whose working city equals city,
	// in directory order. An empty slice is a valid answer, not an error.
	DriversByCity(ctx context.Context, city string) ([]driver.Driver, error)
}

// DriverWorkload queries the driver order service for a driver's open work.
// The count of incomplete tasks is the driver's workload for capacity checks.
type DriverWorkload interface {
	// IncompleteTaskCount returns how many incomplete tasks the driver holds.
	IncompleteTaskCount(ctx context.Context, driverID string) (int, error)
}

// DispatchNotifier hands an assigned order to a driver's task queue.
// A non-2xx response or timeout means the task was not accepted and the
// delivery must stay unassigned for the next sweep.
type DispatchNotifier interface {
	// Submit posts the task to the driver order service.
	Submit(ctx context.Context, task driver.Task) error
}
