package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixserve/account-service/internal/core/domain"
	"github.com/fixserve/account-service/internal/core/ports"
)

// ProfileService implements role-dispatched profile reads and partial
// updates. Unlike login, each operation touches exactly the store named by
// the role; there is no cross-store fallback.
type ProfileService struct {
	stores map[domain.Role]ports.AccountStore
	cache  ports.ProfileViewCache
	logger zerolog.Logger
}

// NewProfileService builds a ProfileService. cache may be nil, in which case
// every read goes to the store.
func NewProfileService(admins, technicians, users ports.AccountStore, cache ports.ProfileViewCache, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		stores: map[domain.Role]ports.AccountStore{
			domain.RoleAdmin:      admins,
			domain.RoleTechnician: technicians,
			domain.RoleUser:       users,
		},
		cache:  cache,
		logger: logger,
	}
}

// GetProfile returns the sparse, role-shaped view of the account. The role
// match is case-insensitive; anything outside the supported set is rejected.
func (s *ProfileService) GetProfile(ctx context.Context, accountID string, role string) (*ports.ProfileView, error) {
	resolved, ok := domain.ParseRole(role)
	if !ok {
		return nil, &domain.UnsupportedRoleError{Role: role, Op: "retrieval"}
	}

	if s.cache != nil {
		if view, hit := s.cache.Get(ctx, resolved, accountID); hit {
			return view, nil
		}
	}

	account, err := s.stores[resolved].FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &domain.ProfileNotFoundError{Role: resolved}
	}

	view := newProfileView(resolved, account)
	if s.cache != nil {
		s.cache.Set(ctx, resolved, accountID, view)
	}
	return view, nil
}

// UpdateProfile applies a partial merge: each non-nil field of update
// overwrites the stored value, everything else is left untouched. Email and
// password are never modified here. ADMIN accounts are readable but not
// updatable.
func (s *ProfileService) UpdateProfile(ctx context.Context, accountID string, role string, update ports.ProfileUpdate) (*ports.ProfileView, error) {
	resolved, ok := domain.ParseRole(role)
	if !ok || resolved == domain.RoleAdmin {
		return nil, &domain.UnsupportedRoleError{Role: role, Op: "update"}
	}

	store := s.stores[resolved]
	account, err := store.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &domain.ProfileNotFoundError{Role: resolved}
	}

	if update.FullName != nil {
		account.FullName = *update.FullName
	}
	if update.PhoneNumber != nil {
		account.PhoneNumber = *update.PhoneNumber
	}
	if update.Address != nil {
		account.Address = *update.Address
	}
	if update.ProfilePhoto != nil {
		account.ProfilePhoto = *update.ProfilePhoto
	}
	if resolved == domain.RoleTechnician && update.ExperienceYears != nil {
		account.ExperienceYears = update.ExperienceYears
	}
	account.UpdatedAt = time.Now().UTC()

	saved, err := store.Save(ctx, account)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, resolved, accountID)
	}

	s.logger.Info().Str("account_id", accountID).Str("role", string(resolved)).Msg("profile updated")
	return newProfileView(resolved, saved), nil
}

// newProfileView shapes the account into the sparse response for its role:
// address and photo for users and technicians, the experience and earnings
// figures for technicians only, neither for admins.
func newProfileView(role domain.Role, account *domain.Account) *ports.ProfileView {
	view := &ports.ProfileView{
		FullName:    account.FullName,
		Email:       account.Email,
		PhoneNumber: account.PhoneNumber,
		Role:        string(role),
	}

	if role == domain.RoleUser || role == domain.RoleTechnician {
		address := account.Address
		photo := account.ProfilePhoto
		view.Address = &address
		view.ProfilePhoto = &photo
	}

	if role == domain.RoleTechnician {
		jobs := account.TotalJobsCompleted
		earnings := account.TotalEarnings
		view.ExperienceYears = account.ExperienceYears
		view.TotalJobsCompleted = &jobs
		view.TotalEarnings = &earnings
	}

	return view
}
