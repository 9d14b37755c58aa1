package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery record.
// It implements a state machine with defined transitions to ensure
// deliveries follow the correct dispatch workflow.
//
// State transitions:
//
//	Unassigned ──> Assigned ──> Delivered
//
// Unlike a generic order workflow there is no reassignment: once a driver has
// accepted a delivery the assignment is final, and a second assignment attempt
// must be rejected rather than silently overwriting the first.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Unassigned is the initial status when a delivery record is created
	// from an order event. Records in this status are picked up by the
	// reconciliation sweep until a driver accepts them.
	Unassigned

	// Assigned indicates a driver has accepted the delivery.
	// Driver contact fields are populated exactly when a record is in this state.
	Assigned

	// Delivered indicates the driver completed the delivery.
	// This is a final state with no further transitions allowed.
	Delivered
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Unassigned: "Unassigned",
		Assigned:   "Assigned",
		Delivered:  "Delivered",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unassigned: "Unassigned",
		Assigned:   "Assigned",
		Delivered:  "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Unassigned, Assigned, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as produced by String.
// Unknown names are rejected.
func StatusFromString(name string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", name))
}

// ValidateAssign checks if the status allows assignment without performing
// the transition. Only Unassigned records can be assigned; an Assigned or
// Delivered record must never be dispatched a second time.
func (s Status) ValidateAssign() error {
	if s != Unassigned {
		return errs.NewValueIsInvalidErrorWithCause("status transition is invalid",
			fmt.Errorf("cannot assign delivery in %s status", s))
	}
	return nil
}

// Assign performs the Unassigned -> Assigned transition.
// Returns the new status, or an error if the transition is not allowed.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}
	return Assigned, nil
}

// Complete performs the Assigned -> Delivered transition.
// Returns the new status, or an error if the delivery is not currently assigned.
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status transition is invalid",
			fmt.Errorf("cannot complete delivery in %s status", s))
	}
	return Delivered, nil
}
