// Package queries contains read operations for the CQRS architecture.
// Query handlers bypass the domain write model where possible and read
// straight from the database; responses are plain DTOs shaped for the API.
package queries

import (
	"errors"
	"time"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail view of a single order: status,
// progress, timeline, requirements, and delivered files.
type GetOrderQuery struct {
	requestedBy actor.Actor
	orderID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's detail view.
func NewGetOrderQuery(requestedBy actor.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(requestedBy.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		requestedBy: requestedBy,
		orderID:     orderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// RequestedBy returns the actor asking for the order.
func (q GetOrderQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ContactInfoResponse mirrors the contact block inside requirements.
type ContactInfoResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// RequirementsResponse mirrors the customer's build requirements.
type RequirementsResponse struct {
	WebsiteName     string              `json:"websiteName"`
	Description     string              `json:"description,omitempty"`
	RequiredPages   string              `json:"requiredPages,omitempty"`
	PreferredColors string              `json:"preferredColors,omitempty"`
	References      string              `json:"references,omitempty"`
	ContactInfo     ContactInfoResponse `json:"contactInfo"`
}

// TimelineEventResponse is one entry of an order's status history.
type TimelineEventResponse struct {
	Status  string    `json:"status"`
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

// DeliveredFileResponse is one build artifact attached to an order.
type DeliveredFileResponse struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	FileType    string    `json:"fileType"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// GetOrderQueryResponse is the full order detail view.
type GetOrderQueryResponse struct {
	ID                    string                  `json:"id"`
	OwnerID               string                  `json:"ownerId"`
	Plan                  string                  `json:"plan"`
	Price                 decimal.Decimal         `json:"price"`
	Status                string                  `json:"status"`
	PaymentStatus         string                  `json:"paymentStatus"`
	PaymentMethod         string                  `json:"paymentMethod"`
	Requirements          RequirementsResponse    `json:"requirements"`
	Progress              int                     `json:"progress"`
	Timeline              []TimelineEventResponse `json:"timeline"`
	EstimatedDeliveryDate time.Time               `json:"estimatedDeliveryDate"`
	AdminNotes            string                  `json:"adminNotes,omitempty"`
	DeliveredFiles        []DeliveredFileResponse `json:"deliveredFiles"`
	CreatedAt             time.Time               `json:"createdAt"`
	UpdatedAt             time.Time               `json:"updatedAt"`
}
