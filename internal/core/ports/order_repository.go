package ports

import (
	"context"
	"time"

	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// A save is a whole-document write: the store guarantees atomicity for one
// operation but performs no version check, so concurrent writers race and the
// later save wins.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPastDue retrieves orders still in an active build phase whose
	// estimated delivery date lies before asOf. Used by the reminder job.
	GetAllPastDue(ctx context.Context, asOf time.Time) ([]*order.Order, error)
}
