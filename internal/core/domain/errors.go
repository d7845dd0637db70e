package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound: no store contains the email (login) or id
	// (password change).
	ErrAccountNotFound = errors.New("no account found")
	// ErrInvalidCredentials: the password did not match the stored hash at
	// login.
	ErrInvalidCredentials = errors.New("invalid password")
	// ErrEmailInUse: registration against an email already present in the
	// target role's store. Uniqueness is per store, not global.
	ErrEmailInUse = errors.New("email is already in use")
	// ErrWeakPassword carries the single policy message used everywhere a
	// candidate password is rejected.
	ErrWeakPassword = errors.New("password must be at least 8 characters and contain a digit, an uppercase letter, and a special character")
	// ErrIncorrectOldPassword: password change with a wrong current password.
	ErrIncorrectOldPassword = errors.New("incorrect old password")
)

// UnsupportedRoleError is returned by profile operations invoked with a role
// outside their supported set. It keeps the offending role string.
type UnsupportedRoleError struct {
	Role string
	Op   string // "retrieval" or "update"
}

func (e *UnsupportedRoleError) Error() string {
	return fmt.Sprintf("profile %s not allowed for role: %s", e.Op, e.Role)
}

// ProfileNotFoundError is returned when the store named by the role does not
// contain the requested id.
type ProfileNotFoundError struct {
	Role Role
}

func (e *ProfileNotFoundError) Error() string {
	switch e.Role {
	case RoleAdmin:
		return "admin not found"
	case RoleTechnician:
		return "technician not found"
	default:
		return "user not found"
	}
}
