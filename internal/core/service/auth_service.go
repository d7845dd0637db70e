package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixserve/account-service/internal/core/domain"
	"github.com/fixserve/account-service/internal/core/ports"
)

// AuthService implements login, registration and password change over the
// three disjoint role stores.
type AuthService struct {
	// lookup is ordered by precedence: admin, technician, user. The first
	// store matching an email or id wins, even if a later store would also
	// match.
	lookup      []ports.RoleStore
	technicians ports.AccountStore
	users       ports.AccountStore
	hasher      ports.CredentialHasher
	policy      ports.PasswordPolicy
	issuer      ports.TokenIssuer
	logger      zerolog.Logger
}

func NewAuthService(
	admins, technicians, users ports.AccountStore,
	hasher ports.CredentialHasher,
	policy ports.PasswordPolicy,
	issuer ports.TokenIssuer,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		lookup: []ports.RoleStore{
			{Role: domain.RoleAdmin, Store: admins},
			{Role: domain.RoleTechnician, Store: technicians},
			{Role: domain.RoleUser, Store: users},
		},
		technicians: technicians,
		users:       users,
		hasher:      hasher,
		policy:      policy,
		issuer:      issuer,
		logger:      logger,
	}
}

// Login resolves the email across the stores in precedence order, verifies
// the password and returns a signed session token. Store and token issuer
// failures propagate untranslated.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	for _, rs := range s.lookup {
		account, err := rs.Store.FindByEmail(ctx, email)
		if err != nil {
			return "", err
		}
		if account == nil {
			continue
		}

		if !s.hasher.Verify(password, account.PasswordHash) {
			return "", fmt.Errorf("%w for email: %s", domain.ErrInvalidCredentials, email)
		}

		token, err := s.issuer.Issue(account.ID, string(rs.Role))
		if err != nil {
			return "", err
		}

		s.logger.Info().Str("account_id", account.ID).Str("role", string(rs.Role)).Msg("login succeeded")
		return token, nil
	}

	return "", fmt.Errorf("%w for email: %s", domain.ErrAccountNotFound, email)
}

// RegisterUser creates a USER account. Email uniqueness is checked against
// the user store only.
func (s *AuthService) RegisterUser(ctx context.Context, input ports.RegisterUserInput) error {
	account, err := s.newAccount(ctx, s.users, input.Email, input.Password)
	if err != nil {
		return err
	}

	account.FullName = input.FullName
	account.PhoneNumber = input.PhoneNumber
	account.Address = input.Address
	account.ProfilePhoto = domain.DefaultUserPhoto

	if _, err := s.users.Save(ctx, account); err != nil {
		return err
	}

	s.logger.Info().Str("email", input.Email).Str("role", string(domain.RoleUser)).Msg("account registered")
	return nil
}

// RegisterTechnician creates a TECHNICIAN account. The job and earnings
// totals always start at zero regardless of the input.
func (s *AuthService) RegisterTechnician(ctx context.Context, input ports.RegisterTechnicianInput) error {
	account, err := s.newAccount(ctx, s.technicians, input.Email, input.Password)
	if err != nil {
		return err
	}

	account.FullName = input.FullName
	account.PhoneNumber = input.PhoneNumber
	account.Address = input.Address
	account.ProfilePhoto = domain.DefaultTechnicianPhoto
	account.ExperienceYears = input.ExperienceYears
	account.TotalJobsCompleted = 0
	account.TotalEarnings = 0.0

	if _, err := s.technicians.Save(ctx, account); err != nil {
		return err
	}

	s.logger.Info().Str("email", input.Email).Str("role", string(domain.RoleTechnician)).Msg("account registered")
	return nil
}

// newAccount runs the shared registration checks (duplicate email, password
// policy) and returns a fresh account with the password already hashed.
func (s *AuthService) newAccount(ctx context.Context, store ports.AccountStore, email, password string) (*domain.Account, error) {
	existing, err := store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailInUse
	}

	if !s.policy.IsAcceptable(password) {
		return nil, domain.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &domain.Account{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ChangePassword resolves the account by id across all stores in precedence
// order, verifies the current password, validates the new one against the
// policy and persists the new hash in place. No other field changes.
func (s *AuthService) ChangePassword(ctx context.Context, accountID, oldPassword, newPassword string) error {
	for _, rs := range s.lookup {
		account, err := rs.Store.FindByID(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			continue
		}

		if !s.hasher.Verify(oldPassword, account.PasswordHash) {
			return domain.ErrIncorrectOldPassword
		}
		if !s.policy.IsAcceptable(newPassword) {
			return domain.ErrWeakPassword
		}

		hash, err := s.hasher.Hash(newPassword)
		if err != nil {
			return err
		}
		account.PasswordHash = hash
		account.UpdatedAt = time.Now().UTC()

		if _, err := rs.Store.Save(ctx, account); err != nil {
			return err
		}

		s.logger.Info().Str("account_id", accountID).Str("role", string(rs.Role)).Msg("password changed")
		return nil
	}

	return fmt.Errorf("%w for id: %s", domain.ErrAccountNotFound, accountID)
}
