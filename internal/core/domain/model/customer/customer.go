// Package customer provides the customer entity: the account that owns orders.
// The core only needs a name and an email (admin free-text search matches the
// email, and notifications are addressed to it); authentication and account
// management live outside this service.
package customer

import (
	"errors"
	"strings"

	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the account that places and owns orders.
type Customer struct {
	id    kernel.UUID
	name  string
	email string

	isConstructed bool
}

// NewCustomer creates a validated Customer.
// The email is lowercased for case-insensitive matching.
func NewCustomer(id kernel.UUID, name, email string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customer name")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.NewValueIsInvalidError("customer email")
	}

	return &Customer{
		id:            id,
		name:          name,
		email:         strings.ToLower(email),
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's lowercased email address.
func (c *Customer) Email() string {
	return c.email
}
