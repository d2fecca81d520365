package domain

import "time"

// User represents an application account.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	Active       bool
	CreatedAt    time.Time
}

// Identity is the authenticated caller derived from a verified credential.
// It is materialized fresh on every request and never stored.
type Identity struct {
	UserID int64
	Email  string
	Role   UserRole
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool { return i.Role == UserRoleAdmin }

// CanActOn reports whether the identity may mutate a task owned by ownerID.
// Admins act on any task; regular users only on their own.
func (i Identity) CanActOn(ownerID int64) bool {
	return i.IsAdmin() || i.UserID == ownerID
}
