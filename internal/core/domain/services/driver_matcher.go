package services

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/ports"
)

// ErrNoDriverAvailable is returned when the driver directory has no drivers
// at all for the delivery's city. The record stays unassigned for the next sweep.
var ErrNoDriverAvailable = errors.New("no driver available")

// ErrAllDriversAtCapacity is returned when every candidate driver already
// holds the maximum number of incomplete tasks. Also non-fatal; the record is
// retried on the next sweep when workloads may have drained.
var ErrAllDriversAtCapacity = errors.New("all drivers at capacity")

// DefaultCapacityThreshold is the number of incomplete tasks at which a
// driver stops being eligible for new assignments.
const DefaultCapacityThreshold = 5

// DriverMatcher is the domain service that selects a driver for an
// unassigned delivery.
//
// Selection policy:
//   - Candidates are considered in directory order (first-fit); there is no
//     ranking, randomization or load balancing beyond the capacity cutoff
//   - A candidate is eligible when its incomplete-task count is strictly
//     below the capacity threshold; a driver at exactly the threshold is
//     excluded
//   - The first eligible candidate wins
//
// Workload lookups are remote queries, so a lookup failure aborts the whole
// attempt rather than skipping the driver: skipping could assign a later
// driver while an earlier, possibly idle one was merely unreachable, which
// would silently violate the first-fit policy.
type DriverMatcher struct {
	capacity int
}

// NewDriverMatcher creates a matcher with the given capacity threshold.
// Non-positive values fall back to DefaultCapacityThreshold.
func NewDriverMatcher(capacity int) DriverMatcher {
	if capacity <= 0 {
		capacity = DefaultCapacityThreshold
	}
	return DriverMatcher{capacity: capacity}
}

// Capacity returns the configured capacity threshold.
func (m DriverMatcher) Capacity() int {
	return m.capacity
}

// Match returns the first candidate driver with spare capacity for the
// given delivery.
//
// Returns:
//   - ErrNoDriverAvailable when candidates is empty
//   - ErrAllDriversAtCapacity when no candidate is below the threshold
//   - the workload lookup error when a capacity query fails
//
// Match performs no writes; committing the assignment (task submission and
// the store update) is the caller's responsibility.
func (m DriverMatcher) Match(
	ctx context.Context,
	d *delivery.Delivery,
	candidates []driver.Driver,
	workload ports.DriverWorkload,
) (driver.Driver, error) {
	if err := d.Validate(); err != nil {
		return driver.Driver{}, err
	}
	if err := d.Status().ValidateAssign(); err != nil {
		return driver.Driver{}, err
	}

	if len(candidates) == 0 {
		return driver.Driver{}, ErrNoDriverAvailable
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return driver.Driver{}, err
		}

		count, err := workload.IncompleteTaskCount(ctx, candidate.ID)
		if err != nil {
			return driver.Driver{}, err
		}

		if count < m.capacity {
			return candidate, nil
		}
	}

	return driver.Driver{}, ErrAllDriversAtCapacity
}
