package order

import (
	"errors"
	"fmt"
	"time"

	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// messageOrderReceived is the timeline message written atomically with creation.
const messageOrderReceived = "Order received"

// deliveryLeadTime is the default estimated delivery window granted at checkout.
const deliveryLeadTime = 14 * 24 * time.Hour

// Order represents a website-build order. It is the aggregate root that manages
// the order lifecycle from checkout through delivery.
//
// Order follows these invariants:
//   - Status is always one of the fixed enum values
//   - The timeline is append-only; the first entry is written atomically with creation
//   - Exactly one timeline entry is appended per committed status change
//   - Progress is derived from status via a fixed table; cancelling freezes it
//   - Delivered files are immutable once appended
//   - The owner never changes after creation
//
// The struct uses private fields to ensure encapsulation; every mutation goes
// through a validated method. There is no version counter: concurrent writers
// race and the later save wins.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID is the customer who placed the order; immutable after creation
	ownerID kernel.UUID

	// plan is the purchased service tier
	plan Plan

	// price is derived from the plan at creation time
	price decimal.Decimal

	// status is the current state in the build workflow
	status Status

	// paymentStatus mirrors the payment processor's view of the payment
	paymentStatus PaymentStatus

	// paymentIntentRef is the opaque reference issued by the payment processor
	paymentIntentRef string

	// paymentMethod records how the customer chose to pay
	paymentMethod PaymentMethod

	// requirements is what the customer asked to be built
	requirements Requirements

	// progress is the derived completion percentage, 0-100
	progress int

	// timeline is the append-only audit log of status changes and notable events
	timeline []TimelineEvent

	// estimatedDeliveryDate is when the build is expected to ship
	estimatedDeliveryDate time.Time

	// adminNotes is internal back-office text, never shown to the customer
	adminNotes string

	// deliveredFiles lists the artifacts handed to the customer, append-only
	deliveredFiles []DeliveredFile

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order at checkout time.
//
// On success the order starts in pending status with pending payment, the
// price copied from the plan table, progress derived for pending, a single
// "Order received" timeline entry, and an estimated delivery date fourteen
// days out.
//
// Returns a validation error if the ids are invalid, the plan or payment
// method is unrecognized, or the requirements lack a website name.
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	plan Plan,
	requirements Requirements,
	paymentIntentRef string,
	paymentMethod PaymentMethod,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		plan.Validate(),
		requirements.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	received, err := NewTimelineEvent(StatusPending, now, messageOrderReceived)
	if err != nil {
		return nil, err
	}

	progress, _ := StatusPending.Progress()

	return &Order{
		id:                    id,
		ownerID:               ownerID,
		plan:                  plan,
		price:                 plan.Price(),
		status:                StatusPending,
		paymentStatus:         PaymentPending,
		paymentIntentRef:      paymentIntentRef,
		paymentMethod:         paymentMethod,
		requirements:          requirements,
		progress:              progress,
		timeline:              []TimelineEvent{received},
		estimatedDeliveryDate: now.Add(deliveryLeadTime),
		createdAt:             now,
		updatedAt:             now,
		isConstructed:         true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence.
// All invariants are re-checked so corrupt rows cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	plan Plan,
	price decimal.Decimal,
	status Status,
	paymentStatus PaymentStatus,
	paymentIntentRef string,
	paymentMethod PaymentMethod,
	requirements Requirements,
	progress int,
	timeline []TimelineEvent,
	estimatedDeliveryDate time.Time,
	adminNotes string,
	deliveredFiles []DeliveredFile,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		plan.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
		paymentMethod.Validate(),
		requirements.Validate(),
	); err != nil {
		return nil, err
	}

	if progress < 0 || progress > 100 {
		return nil, errs.NewValueIsOutOfRangeError("progress", progress, 0, 100)
	}

	if len(timeline) == 0 {
		return nil, errs.NewValueIsRequiredError("timeline")
	}

	return &Order{
		id:                    id,
		ownerID:               ownerID,
		plan:                  plan,
		price:                 price,
		status:                status,
		paymentStatus:         paymentStatus,
		paymentIntentRef:      paymentIntentRef,
		paymentMethod:         paymentMethod,
		requirements:          requirements,
		progress:              progress,
		timeline:              timeline,
		estimatedDeliveryDate: estimatedDeliveryDate,
		adminNotes:            adminNotes,
		deliveredFiles:        deliveredFiles,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		isConstructed:         true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the customer who placed the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Plan returns the purchased service tier.
func (o *Order) Plan() Plan {
	return o.plan
}

// Price returns the order price derived from the plan at creation.
func (o *Order) Price() decimal.Decimal {
	return o.price
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentIntentRef returns the opaque payment processor reference.
func (o *Order) PaymentIntentRef() string {
	return o.paymentIntentRef
}

// PaymentMethod returns how the customer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Requirements returns what the customer asked to be built.
func (o *Order) Requirements() Requirements {
	return o.requirements
}

// Progress returns the derived completion percentage.
func (o *Order) Progress() int {
	return o.progress
}

// Timeline returns a copy of the audit timeline.
// The returned slice can be read freely; appends go through the aggregate.
func (o *Order) Timeline() []TimelineEvent {
	out := make([]TimelineEvent, len(o.timeline))
	copy(out, o.timeline)
	return out
}

// EstimatedDeliveryDate returns when the build is expected to ship.
func (o *Order) EstimatedDeliveryDate() time.Time {
	return o.estimatedDeliveryDate
}

// AdminNotes returns the internal back-office notes.
func (o *Order) AdminNotes() string {
	return o.adminNotes
}

// DeliveredFiles returns a copy of the delivered artifact metadata list.
func (o *Order) DeliveredFiles() []DeliveredFile {
	out := make([]DeliveredFile, len(o.deliveredFiles))
	copy(out, o.deliveredFiles)
	return out
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to a new status and derives the audit trail.
//
// On a committed change (newStatus differs from the current one):
//   - exactly one timeline entry is appended, carrying the explicit message
//     when provided, otherwise the status's default message; if neither
//     exists, no entry is appended
//   - progress is set from the fixed table; cancelling retains the prior value
//
// Calling ChangeStatus with the current status is a no-op: the timeline and
// progress are untouched. Nothing restricts leaving Completed or Cancelled;
// the back office owns the workflow.
func (o *Order) ChangeStatus(newStatus Status, message string, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if newStatus == o.status {
		return nil
	}

	entryMessage := message
	if entryMessage == "" {
		entryMessage, _ = newStatus.DefaultMessage()
	}

	if entryMessage != "" {
		event, err := NewTimelineEvent(newStatus, now, entryMessage)
		if err != nil {
			return err
		}
		o.timeline = append(o.timeline, event)
	}

	o.status = newStatus
	if progress, ok := newStatus.Progress(); ok {
		o.progress = progress
	}
	o.updatedAt = now

	return nil
}

// SetPaymentStatus records the payment processor's view of the payment.
func (o *Order) SetPaymentStatus(status PaymentStatus, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.paymentStatus = status
	o.updatedAt = now
	return nil
}

// UpdateRequirements replaces the order requirements.
//
// Owners may only reshape requirements while the order is still pending or in
// the requirements phase; afterwards the build has started and the operation
// fails with an invalid-state error, leaving the order unchanged.
func (o *Order) UpdateRequirements(requirements Requirements, now time.Time) error {
	if err := requirements.Validate(); err != nil {
		return err
	}

	if o.status != StatusPending && o.status != StatusRequirements {
		return errs.NewInvalidStateError("update requirements", o.status.String())
	}

	o.requirements = requirements
	o.updatedAt = now
	return nil
}

// SetEstimatedDeliveryDate moves the estimated delivery date.
func (o *Order) SetEstimatedDeliveryDate(date time.Time, now time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDeliveryDate")
	}

	o.estimatedDeliveryDate = date
	o.updatedAt = now
	return nil
}

// SetAdminNotes replaces the internal back-office notes.
// Notes never touch the timeline or progress.
func (o *Order) SetAdminNotes(notes string, now time.Time) {
	o.adminNotes = notes
	o.updatedAt = now
}

// AppendTimelineEvent appends an arbitrary audit entry without changing status.
// Used by admins to record notable events between status changes.
func (o *Order) AppendTimelineEvent(status Status, message string, now time.Time) error {
	event, err := NewTimelineEvent(status, now, message)
	if err != nil {
		return err
	}

	o.timeline = append(o.timeline, event)
	o.updatedAt = now
	return nil
}

// AddDeliveredFile appends delivered artifact metadata and records the
// delivery in the timeline as "File uploaded: <name>".
//
// If this is the first delivered file and the order is in development, the
// order automatically moves to revision, which runs the usual transition
// logic (revision timeline entry, progress 80). The rule can only ever fire
// once per order: every later append sees a non-empty file list.
func (o *Order) AddDeliveredFile(name, url string, fileType FileType, description string, now time.Time) error {
	file, err := NewDeliveredFile(name, url, fileType, description, now)
	if err != nil {
		return err
	}

	uploaded, err := NewTimelineEvent(o.status, now, fmt.Sprintf("File uploaded: %s", name))
	if err != nil {
		return err
	}

	o.deliveredFiles = append(o.deliveredFiles, file)
	o.timeline = append(o.timeline, uploaded)
	o.updatedAt = now

	if o.status == StatusDevelopment && len(o.deliveredFiles) == 1 {
		return o.ChangeStatus(StatusRevision, "", now)
	}

	return nil
}

// IsPastDue reports whether the order is still in an active build phase after
// its estimated delivery date. Terminal and pre-payment states never count.
func (o *Order) IsPastDue(asOf time.Time) bool {
	return o.status.IsInProgress() && !o.estimatedDeliveryDate.IsZero() && asOf.After(o.estimatedDeliveryDate)
}
