package commands

import (
	"errors"
	"time"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/pkg/guard"
)

var (
	ErrUpdateAdminDetailsCommandIsNotConstructed = errors.New(
		"UpdateAdminDetailsCommand must be created via NewUpdateAdminDetailsCommand constructor",
	)
	ErrNoAdminDetailsProvided    = errors.New("at least one admin detail must be provided")
	ErrTimelineMessageIsRequired = errors.New("timeline message is required when appending an event")
	ErrDeliveryDateMustNotBeZero = errors.New("estimated delivery date must not be zero")
)

// TimelineAppend describes an extra timeline event an admin wants to attach
// to an order without changing its status, such as a mid-phase progress note.
type TimelineAppend struct {
	Status  order.Status
	Message string
}

// UpdateAdminDetailsCommand represents an admin editing the bookkeeping
// fields of an order: internal notes, the estimated delivery date, and
// free-form timeline annotations. Nil fields are left untouched; at least
// one must be present.
type UpdateAdminDetailsCommand struct { //nolint:recvcheck //using for validation
	requestedBy           actor.Actor
	orderID               kernel.UUID
	adminNotes            *string
	estimatedDeliveryDate *time.Time
	timelineAppend        *TimelineAppend

	guard guard.ConstructorGuard
}

// NewUpdateAdminDetailsCommand creates a command to edit an order's admin
// details. At least one of the optional fields must be non-nil.
func NewUpdateAdminDetailsCommand(
	requestedBy actor.Actor,
	orderID kernel.UUID,
	adminNotes *string,
	estimatedDeliveryDate *time.Time,
	timelineAppend *TimelineAppend,
) (UpdateAdminDetailsCommand, error) {
	detailsCommand := UpdateAdminDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		detailsCommand.setRequestedBy(requestedBy),
		detailsCommand.setOrderID(orderID),
		detailsCommand.setDetails(adminNotes, estimatedDeliveryDate, timelineAppend),
	); err != nil {
		return UpdateAdminDetailsCommand{}, err
	}

	return detailsCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAdminDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAdminDetailsCommandIsNotConstructed)
}

// RequestedBy returns the actor editing the order.
func (c UpdateAdminDetailsCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// OrderID returns the target order's identifier.
func (c UpdateAdminDetailsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AdminNotes returns the replacement notes, nil to leave them untouched.
func (c UpdateAdminDetailsCommand) AdminNotes() *string {
	return c.adminNotes
}

// EstimatedDeliveryDate returns the new delivery estimate, nil to keep it.
func (c UpdateAdminDetailsCommand) EstimatedDeliveryDate() *time.Time {
	return c.estimatedDeliveryDate
}

// TimelineAppend returns the extra timeline event, nil when none requested.
func (c UpdateAdminDetailsCommand) TimelineAppend() *TimelineAppend {
	return c.timelineAppend
}

func (c *UpdateAdminDetailsCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *UpdateAdminDetailsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateAdminDetailsCommand) setDetails(
	adminNotes *string,
	estimatedDeliveryDate *time.Time,
	timelineAppend *TimelineAppend,
) error {
	if adminNotes == nil && estimatedDeliveryDate == nil && timelineAppend == nil {
		return ErrNoAdminDetailsProvided
	}

	if estimatedDeliveryDate != nil && estimatedDeliveryDate.IsZero() {
		return ErrDeliveryDateMustNotBeZero
	}

	if timelineAppend != nil {
		if err := timelineAppend.Status.Validate(); err != nil {
			return err
		}
		if timelineAppend.Message == "" {
			return ErrTimelineMessageIsRequired
		}
	}

	c.adminNotes = adminNotes
	c.estimatedDeliveryDate = estimatedDeliveryDate
	c.timelineAppend = timelineAppend
	return nil
}
