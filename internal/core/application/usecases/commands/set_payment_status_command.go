package commands

import (
	"errors"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/pkg/guard"
)

var ErrSetPaymentStatusCommandIsNotConstructed = errors.New(
	"SetPaymentStatusCommand must be created via NewSetPaymentStatusCommand constructor",
)

// SetPaymentStatusCommand represents an admin recording the outcome of a
// payment: paid, failed, or refunded. Payment state never moves on its own;
// it only changes through this command.
type SetPaymentStatusCommand struct { //nolint:recvcheck //using for validation
	requestedBy   actor.Actor
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewSetPaymentStatusCommand creates a command to record a payment outcome.
func NewSetPaymentStatusCommand(
	requestedBy actor.Actor,
	orderID kernel.UUID,
	paymentStatus order.PaymentStatus,
) (SetPaymentStatusCommand, error) {
	paymentCommand := SetPaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setRequestedBy(requestedBy),
		paymentCommand.setOrderID(orderID),
		paymentCommand.setPaymentStatus(paymentStatus),
	); err != nil {
		return SetPaymentStatusCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetPaymentStatusCommandIsNotConstructed)
}

// RequestedBy returns the actor recording the payment outcome.
func (c SetPaymentStatusCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// OrderID returns the target order's identifier.
func (c SetPaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the payment status to record.
func (c SetPaymentStatusCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

func (c *SetPaymentStatusCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *SetPaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetPaymentStatusCommand) setPaymentStatus(status order.PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.paymentStatus = status
	return nil
}
