package order

import (
	"fmt"

	"sitebuilder/internal/pkg/errs"
)

// Status represents the lifecycle state of a website-build order.
//
// The workflow runs
//
//	Pending -> Requirements -> Design -> Development -> Revision -> Completed
//
// with Cancelled reachable from any state. Nothing prevents an admin from
// moving an order out of Completed or Cancelled back into an active state;
// the workflow is advisory, not a hard transition matrix.
//
// Status is a value object that derives the progress percentage and the
// default timeline message for each state, and provides string representations
// for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first created.
	StatusPending

	// StatusRequirements indicates the team is gathering requirements from the customer.
	StatusRequirements

	// StatusDesign indicates the design phase is underway.
	StatusDesign

	// StatusDevelopment indicates the site is being built.
	StatusDevelopment

	// StatusRevision indicates deliverables are with the customer for feedback.
	StatusRevision

	// StatusCompleted indicates the website has been delivered.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled. Progress is frozen
	// at its pre-cancellation value.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "unknown",
		StatusPending:      "pending",
		StatusRequirements: "requirements",
		StatusDesign:       "design",
		StatusDevelopment:  "development",
		StatusRevision:     "revision",
		StatusCompleted:    "completed",
		StatusCancelled:    "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:      "pending",
		StatusRequirements: "requirements",
		StatusDesign:       "design",
		StatusDevelopment:  "development",
		StatusRevision:     "revision",
		StatusCompleted:    "completed",
		StatusCancelled:    "cancelled",
	}
}

// getProgressTable maps each status to its derived progress percentage.
// Cancelled has no entry: cancelling retains the prior progress value.
func getProgressTable() map[Status]int {
	//nolint:exhaustive // StatusCancelled retains the previous progress
	return map[Status]int{
		StatusPending:      5,
		StatusRequirements: 20,
		StatusDesign:       40,
		StatusDevelopment:  60,
		StatusRevision:     80,
		StatusCompleted:    100,
	}
}

// getDefaultMessageTable maps each status to the timeline message used when no
// explicit message accompanies a status change. Pending has no entry: it is
// only ever set at creation, which writes its own entry.
func getDefaultMessageTable() map[Status]string {
	//nolint:exhaustive // StatusPending is only set at creation
	return map[Status]string{
		StatusRequirements: "Gathering requirements",
		StatusDesign:       "Design phase started",
		StatusDevelopment:  "Development phase started",
		StatusRevision:     "Revisions in progress",
		StatusCompleted:    "Website completed",
		StatusCancelled:    "Order cancelled",
	}
}

// StatusFromString parses a status name as stored in the database or supplied
// by API filters. Returns an error for anything outside the fixed enum.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Status value is one of the fixed enum values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Progress returns the progress percentage derived from the status.
// The second return value is false for Cancelled (and invalid values),
// meaning the caller must retain the current progress.
func (s Status) Progress() (int, bool) {
	p, ok := getProgressTable()[s]
	return p, ok
}

// DefaultMessage returns the timeline message recorded for a transition into
// this status when the caller supplies no explicit message. The second return
// value is false for Pending (and invalid values).
func (s Status) DefaultMessage() (string, bool) {
	m, ok := getDefaultMessageTable()[s]
	return m, ok
}

// IsInProgress reports whether the status counts as "in progress" for
// admin statistics: requirements, design, development, or revision.
func (s Status) IsInProgress() bool {
	switch s {
	case StatusRequirements, StatusDesign, StatusDevelopment, StatusRevision:
		return true
	default:
		return false
	}
}
