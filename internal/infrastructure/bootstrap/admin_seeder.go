package bootstrap

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixserve/account-service/internal/core/domain"
	"github.com/fixserve/account-service/internal/core/ports"
)

// AdminSeeder creates the default admin account at startup when no account
// with the configured email exists. Repeated runs are no-ops, so the seeding
// is safe across restarts. The core never assumes this account exists.
type AdminSeeder struct {
	admins ports.AccountStore
	hasher ports.CredentialHasher
	logger zerolog.Logger
}

func NewAdminSeeder(admins ports.AccountStore, hasher ports.CredentialHasher, logger zerolog.Logger) *AdminSeeder {
	return &AdminSeeder{admins: admins, hasher: hasher, logger: logger}
}

// Seed inserts the default admin unless one already exists. The password is
// taken as-is from configuration and deliberately bypasses the strength
// policy: the seeded account is the documented exception to the hash
// invariant.
func (s *AdminSeeder) Seed(ctx context.Context, name, email, phone, password string) error {
	existing, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		s.logger.Info().Str("email", email).Msg("admin account already exists")
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.admins.Save(ctx, &domain.Account{
		FullName:     name,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("default admin account created")
	return nil
}
