// Package actor models the authenticated caller of a core operation.
// An actor carries an identity and a role; the command and query handlers use
// these two fields to gate mutations and scope reads. How the actor was
// authenticated is an adapter concern.
package actor

import (
	"fmt"

	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/pkg/errs"
)

// Role is the authorization level of an actor.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is a regular customer. Customers may create orders, read
	// and list their own orders, and edit requirements early in the lifecycle.
	RoleCustomer

	// RoleAdmin is a back-office operator. Admins drive the order workflow:
	// status changes, payment status, notes, delivery dates, and file delivery.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "customer",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role name as carried in authentication claims.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the role name used in claims and logs.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the authenticated caller: an identity plus a role.
// The zero value is invalid; use NewActor.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates an actor from a validated identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Validate checks that the actor was constructed from valid parts.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
