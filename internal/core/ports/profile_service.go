package ports

import (
	"context"

	"github.com/fixserve/account-service/internal/core/domain"
)

// ProfileView is the sparse, role-shaped response for profile operations.
// Fields that do not apply to the resolved role are nil and omitted from the
// encoded payload rather than rendered as defaults.
type ProfileView struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`

	// USER and TECHNICIAN only.
	Address      *string `json:"address,omitempty"`
	ProfilePhoto *string `json:"profilePhoto,omitempty"`

	// TECHNICIAN only. Experience stays absent when the technician never
	// provided it.
	ExperienceYears    *int     `json:"experience,omitempty"`
	TotalJobsCompleted *int     `json:"totalJobsCompleted,omitempty"`
	TotalEarnings      *float64 `json:"totalEarnings,omitempty"`
}

// ProfileUpdate is a partial update payload: nil fields are left untouched,
// non-nil fields overwrite the stored value. Email and password are never
// updatable through this path.
type ProfileUpdate struct {
	FullName     *string
	PhoneNumber  *string
	Address      *string
	ProfilePhoto *string
	// ExperienceYears applies to TECHNICIAN accounts only and is ignored for
	// any other role.
	ExperienceYears *int
}

// ProfileService dispatches profile reads and partial updates by role.
type ProfileService interface {
	GetProfile(ctx context.Context, accountID string, role string) (*ProfileView, error)
	UpdateProfile(ctx context.Context, accountID string, role string, update ProfileUpdate) (*ProfileView, error)
}

// ProfileViewCache is a best-effort read-through cache for profile views.
// Implementations must treat misses and backend failures alike: callers fall
// back to the store.
type ProfileViewCache interface {
	Get(ctx context.Context, role domain.Role, accountID string) (*ProfileView, bool)
	Set(ctx context.Context, role domain.Role, accountID string, view *ProfileView)
	Invalidate(ctx context.Context, role domain.Role, accountID string)
}
