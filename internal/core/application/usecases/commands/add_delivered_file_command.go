package commands

import (
	"errors"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/pkg/guard"
)

var (
	ErrAddDeliveredFileCommandIsNotConstructed = errors.New(
		"AddDeliveredFileCommand must be created via NewAddDeliveredFileCommand constructor",
	)
	ErrFileNameIsRequired = errors.New("file name is required")
	ErrFileDataIsRequired = errors.New("file data is required")
)

// AddDeliveredFileCommand represents an admin uploading a build artifact for
// an order: a design mockup, a code bundle, or any other deliverable the
// customer should see on their order page.
type AddDeliveredFileCommand struct { //nolint:recvcheck //using for validation
	requestedBy actor.Actor
	orderID     kernel.UUID
	fileName    string
	fileType    order.FileType
	description string
	data        []byte

	guard guard.ConstructorGuard
}

// NewAddDeliveredFileCommand creates a command to attach a delivered file.
// Validates the actor, order id, file type, and that a name and payload are
// present. The description is optional.
func NewAddDeliveredFileCommand(
	requestedBy actor.Actor,
	orderID kernel.UUID,
	fileName string,
	fileType order.FileType,
	description string,
	data []byte,
) (AddDeliveredFileCommand, error) {
	fileCommand := AddDeliveredFileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		fileCommand.setRequestedBy(requestedBy),
		fileCommand.setOrderID(orderID),
		fileCommand.setFileName(fileName),
		fileCommand.setFileType(fileType),
		fileCommand.setData(data),
	); err != nil {
		return AddDeliveredFileCommand{}, err
	}

	fileCommand.description = description

	return fileCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDeliveredFileCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveredFileCommandIsNotConstructed)
}

// RequestedBy returns the actor uploading the file.
func (c AddDeliveredFileCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// OrderID returns the target order's identifier.
func (c AddDeliveredFileCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FileName returns the file's display name.
func (c AddDeliveredFileCommand) FileName() string {
	return c.fileName
}

// FileType returns the file's category.
func (c AddDeliveredFileCommand) FileType() order.FileType {
	return c.fileType
}

// Description returns the optional file description.
func (c AddDeliveredFileCommand) Description() string {
	return c.description
}

// Data returns the raw file bytes to store.
func (c AddDeliveredFileCommand) Data() []byte {
	return c.data
}

func (c *AddDeliveredFileCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *AddDeliveredFileCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddDeliveredFileCommand) setFileName(fileName string) error {
	if fileName == "" {
		return ErrFileNameIsRequired
	}

	c.fileName = fileName
	return nil
}

func (c *AddDeliveredFileCommand) setFileType(fileType order.FileType) error {
	if err := fileType.Validate(); err != nil {
		return err
	}

	c.fileType = fileType
	return nil
}

func (c *AddDeliveredFileCommand) setData(data []byte) error {
	if len(data) == 0 {
		return ErrFileDataIsRequired
	}

	c.data = data
	return nil
}
