package ports

import (
	"context"

	"sitebuilder/internal/core/domain/model/customer"
	"sitebuilder/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer entities.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	// Returns an ObjectNotFoundError if no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
