package commands

import (
	"errors"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/pkg/guard"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand represents an admin request to move an order to a new
// build status. An empty message means the status's stock timeline message
// is used; NotifyCustomer controls whether a mail goes out on success.
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	requestedBy    actor.Actor
	orderID        kernel.UUID
	newStatus      order.Status
	message        string
	notifyCustomer bool

	guard guard.ConstructorGuard
}

// NewChangeStatusCommand creates a command to transition an order's status.
// Validates the actor, order id, and target status. The message is optional.
func NewChangeStatusCommand(
	requestedBy actor.Actor,
	orderID kernel.UUID,
	newStatus order.Status,
	message string,
	notifyCustomer bool,
) (ChangeStatusCommand, error) {
	statusCommand := ChangeStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setRequestedBy(requestedBy),
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return ChangeStatusCommand{}, err
	}

	statusCommand.message = message
	statusCommand.notifyCustomer = notifyCustomer

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

// RequestedBy returns the actor issuing the transition.
func (c ChangeStatusCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// OrderID returns the target order's identifier.
func (c ChangeStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the status to transition into.
func (c ChangeStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Message returns the custom timeline message, empty for the stock one.
func (c ChangeStatusCommand) Message() string {
	return c.message
}

// NotifyCustomer reports whether the customer should be mailed on success.
func (c ChangeStatusCommand) NotifyCustomer() bool {
	return c.notifyCustomer
}

func (c *ChangeStatusCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *ChangeStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
