package commands

import (
	"errors"

	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerEmailIsRequired = errors.New("customer email is required")
)

// CreateOrderCommand represents a checkout request for a new website build.
// Carries the chosen plan, the build requirements, and enough customer
// detail to register a first-time customer on the fly.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(
//		orderID, customerID, "Jane Doe", "jane@example.com",
//		order.PlanGrowth, reqs, order.MethodCard,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	customerName  string
	customerEmail string
	plan          order.Plan
	requirements  order.Requirements
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new website build order.
// Validates ids, plan, payment method, requirements, and that the customer
// name and email are present. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	customerEmail string,
	plan order.Plan,
	requirements order.Requirements,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setCustomerEmail(customerEmail),
		orderCommand.setPlan(plan),
		orderCommand.setRequirements(requirements),
		orderCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the customer's contact email.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Plan returns the chosen pricing plan.
func (c CreateOrderCommand) Plan() order.Plan {
	return c.plan
}

// Requirements returns the website build requirements.
func (c CreateOrderCommand) Requirements() order.Requirements {
	return c.requirements
}

// PaymentMethod returns how the customer intends to pay.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setCustomerEmail(email string) error {
	if email == "" {
		return ErrCustomerEmailIsRequired
	}

	c.customerEmail = email
	return nil
}

func (c *CreateOrderCommand) setPlan(plan order.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	c.plan = plan
	return nil
}

func (c *CreateOrderCommand) setRequirements(requirements order.Requirements) error {
	if err := requirements.Validate(); err != nil {
		return err
	}

	c.requirements = requirements
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
