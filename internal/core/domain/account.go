package domain

import (
	"strings"
	"time"
)

// Role selects the account store an identity lives in and the shape of its
// profile responses.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleTechnician Role = "TECHNICIAN"
	RoleUser       Role = "USER"
)

// ParseRole resolves a role string case-insensitively. The bool result is
// false for anything outside the supported set.
func ParseRole(s string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin, true
	case string(RoleTechnician):
		return RoleTechnician, true
	case string(RoleUser):
		return RoleUser, true
	}
	return "", false
}

// Default profile photo placeholders, distinct per role.
const (
	DefaultUserPhoto       = "default-user.png"
	DefaultTechnicianPhoto = "default-technician.png"
)

// Account is a persisted identity record. Exactly one role-specific store owns
// any given account; the store it came from determines its role. Address and
// ProfilePhoto are meaningful for users and technicians only, and the
// technician numeric fields are zero for every other role.
type Account struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	// PasswordHash is the one-way hash of the account's password, never the
	// plaintext.
	PasswordHash string `json:"-"`
	Address      string `json:"address,omitempty"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`

	// Technician-only fields. ExperienceYears is optional, the totals start
	// at zero and are never mutated by this service.
	ExperienceYears    *int    `json:"experience,omitempty"`
	TotalJobsCompleted int     `json:"totalJobsCompleted,omitempty"`
	TotalEarnings      float64 `json:"totalEarnings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
