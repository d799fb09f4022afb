// Package owner scopes data access to a single entry owner: a registered
// user or an anonymous guest session, never both. All storage reads in
// the analytics path go through ForOwner so no query can cross owners.
package owner

import "github.com/google/uuid"

// Ref identifies the owner of a set of mood entries. Exactly one of
// UserID and GuestID is set.
type Ref struct {
	UserID  *uuid.UUID
	GuestID *uuid.UUID
}

// ForUser builds a Ref for a registered account.
func ForUser(id uuid.UUID) Ref {
	return Ref{UserID: &id}
}

// ForGuest builds a Ref for an anonymous session.
func ForGuest(id uuid.UUID) Ref {
	return Ref{GuestID: &id}
}

// IsGuest reports whether the ref points at a guest session.
func (r Ref) IsGuest() bool {
	return r.GuestID != nil
}

// Valid enforces the XOR ownership invariant.
func (r Ref) Valid() bool {
	return (r.UserID != nil) != (r.GuestID != nil)
}
