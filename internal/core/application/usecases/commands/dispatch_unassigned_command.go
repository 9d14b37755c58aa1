package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrDispatchUnassignedCommandIsNotConstructed = errors.New(
	"DispatchUnassignedCommand must be created via NewDispatchUnassignedCommand constructor",
)

// DispatchUnassignedCommand triggers one reconciliation sweep over every
// unassigned delivery record. It carries no parameters; the guard only keeps
// callers from handing a zero value to the handler.
type DispatchUnassignedCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchUnassignedCommand creates a command for one sweep.
func NewDispatchUnassignedCommand() (DispatchUnassignedCommand, error) {
	return DispatchUnassignedCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchUnassignedCommand) Validate() error {
	return c.guard.Validate(ErrDispatchUnassignedCommandIsNotConstructed)
}
