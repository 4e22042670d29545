// Package identity describes the caller of a request as asserted by the
// hosted auth provider's token.
package identity

import "github.com/google/uuid"

const RoleStaff = "staff"

type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (i Identity) IsStaff() bool {
	return i.Role == RoleStaff
}

// Owns reports whether the caller may act on a record belonging to userID.
// Staff may act on every record.
func (i Identity) Owns(userID uuid.UUID) bool {
	return i.IsStaff() || i.UserID == userID
}
