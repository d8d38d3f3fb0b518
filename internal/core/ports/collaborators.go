// Package ports defines the contracts between the application core and its
// adapters: persistence on the outbound side, plus the external collaborators
// (payments, notifications, blob storage, authentication) whose internals the
// core never sees.
package ports

import (
	"context"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/customer"
	"sitebuilder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// PaymentIntent is the opaque result of asking the payment processor to
// prepare a charge. The core stores Ref on the order and hands ClientSecret
// back to the caller; it never interprets either.
type PaymentIntent struct {
	Ref          string
	ClientSecret string
}

// PaymentProcessor prepares charges for new orders.
// Payment status updates arrive later through the admin surface; the core
// never computes payment state itself.
type PaymentProcessor interface {
	// CreateIntent asks the processor to prepare a charge of the given amount
	// for the customer. Failures surface as UpstreamFailureError.
	CreateIntent(ctx context.Context, cust *customer.Customer, plan order.Plan, amount decimal.Decimal) (PaymentIntent, error)
}

// StatusNotification is everything the notifier needs to compose a
// customer-facing status update.
type StatusNotification struct {
	Order    *order.Order
	Customer *customer.Customer
	Status   order.Status
	Message  string
}

// Notifier sends customer-facing notifications. Invocation is opt-in per
// status update; the caller decides, never the core.
type Notifier interface {
	// NotifyStatusChanged sends a status update mail to the order's customer.
	// Failures surface as UpstreamFailureError.
	NotifyStatusChanged(ctx context.Context, notification StatusNotification) error
}

// BlobStore persists delivered file bytes and issues stable URLs.
// The core stores only the returned URL alongside the file metadata.
type BlobStore interface {
	// Store writes the file bytes for the given order and returns a stable URL.
	// Failures surface as UpstreamFailureError.
	Store(ctx context.Context, orderID string, filename string, data []byte) (string, error)
}

// Authenticator resolves a request credential to an actor.
// The core consumes only the actor's id and role.
type Authenticator interface {
	// Authenticate resolves the given token to an actor, or fails with a
	// validation error for malformed or expired credentials.
	Authenticate(ctx context.Context, token string) (actor.Actor, error)
}
