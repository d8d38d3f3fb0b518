package order

import (
	"time"

	"sitebuilder/internal/pkg/errs"
)

// TimelineEvent is a single entry in an order's audit timeline: the status the
// order held when the entry was written, the time, and a human-readable message.
//
// Timeline entries are immutable and the timeline itself is append-only.
type TimelineEvent struct {
	status  Status
	date    time.Time
	message string
}

// NewTimelineEvent creates a validated timeline entry.
// The message is required; an entry without text has nothing to audit.
func NewTimelineEvent(status Status, date time.Time, message string) (TimelineEvent, error) {
	if err := status.Validate(); err != nil {
		return TimelineEvent{}, err
	}
	if message == "" {
		return TimelineEvent{}, errs.NewValueIsRequiredError("timeline message")
	}
	if date.IsZero() {
		return TimelineEvent{}, errs.NewValueIsRequiredError("timeline date")
	}

	return TimelineEvent{
		status:  status,
		date:    date,
		message: message,
	}, nil
}

// Status returns the order status the entry was written under.
func (e TimelineEvent) Status() Status {
	return e.status
}

// Date returns when the entry was written.
func (e TimelineEvent) Date() time.Time {
	return e.date
}

// Message returns the human-readable description of the event.
func (e TimelineEvent) Message() string {
	return e.message
}
