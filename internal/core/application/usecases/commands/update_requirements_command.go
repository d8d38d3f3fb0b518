package commands

import (
	"errors"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/pkg/guard"
)

var ErrUpdateRequirementsCommandIsNotConstructed = errors.New(
	"UpdateRequirementsCommand must be created via NewUpdateRequirementsCommand constructor",
)

// UpdateRequirementsCommand represents a customer's request to revise the
// build requirements on their own order. Only allowed while the build has
// not moved past requirements gathering.
type UpdateRequirementsCommand struct { //nolint:recvcheck //using for validation
	requestedBy  actor.Actor
	orderID      kernel.UUID
	requirements order.Requirements

	guard guard.ConstructorGuard
}

// NewUpdateRequirementsCommand creates a command to replace an order's
// requirements. Validates the actor, order id, and the new requirements.
func NewUpdateRequirementsCommand(
	requestedBy actor.Actor,
	orderID kernel.UUID,
	requirements order.Requirements,
) (UpdateRequirementsCommand, error) {
	requirementsCommand := UpdateRequirementsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requirementsCommand.setRequestedBy(requestedBy),
		requirementsCommand.setOrderID(orderID),
		requirementsCommand.setRequirements(requirements),
	); err != nil {
		return UpdateRequirementsCommand{}, err
	}

	return requirementsCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRequirementsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRequirementsCommandIsNotConstructed)
}

// RequestedBy returns the actor issuing the update.
func (c UpdateRequirementsCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// OrderID returns the target order's identifier.
func (c UpdateRequirementsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requirements returns the replacement requirements.
func (c UpdateRequirementsCommand) Requirements() order.Requirements {
	return c.requirements
}

func (c *UpdateRequirementsCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *UpdateRequirementsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateRequirementsCommand) setRequirements(requirements order.Requirements) error {
	if err := requirements.Validate(); err != nil {
		return err
	}

	c.requirements = requirements
	return nil
}
