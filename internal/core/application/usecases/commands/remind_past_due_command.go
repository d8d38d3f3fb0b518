package commands

import (
	"errors"

	"sitebuilder/internal/pkg/guard"
)

var ErrRemindPastDueCommandIsNotConstructed = errors.New(
	"RemindPastDueCommand must be created via NewRemindPastDueCommand constructor",
)

// RemindPastDueCommand triggers a sweep over active orders whose estimated
// delivery date has passed. Carries no parameters; the scheduler fires it on
// a fixed cadence.
type RemindPastDueCommand struct {
	guard guard.ConstructorGuard
}

// NewRemindPastDueCommand creates a command to sweep past-due orders.
func NewRemindPastDueCommand() (RemindPastDueCommand, error) {
	return RemindPastDueCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindPastDueCommand) Validate() error {
	return c.guard.Validate(ErrRemindPastDueCommandIsNotConstructed)
}
