package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/fixserve/account-service/internal/core/domain"
	"github.com/fixserve/account-service/internal/core/ports"
	"github.com/fixserve/account-service/internal/security"
)

// stubAccountStore is an in-memory AccountStore keyed by id and email.
type stubAccountStore struct {
	accounts map[string]*domain.Account
	nextID   int
}

func newStubAccountStore() *stubAccountStore {
	return &stubAccountStore{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	if a.ExperienceYears != nil {
		exp := *a.ExperienceYears
		clone.ExperienceYears = &exp
	}
	return &clone
}

func (s *stubAccountStore) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range s.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, nil
}

func (s *stubAccountStore) FindByID(_ context.Context, id string) (*domain.Account, error) {
	return cloneAccount(s.accounts[id]), nil
}

func (s *stubAccountStore) Save(_ context.Context, account *domain.Account) (*domain.Account, error) {
	copy := cloneAccount(account)
	if copy.ID == "" {
		s.nextID++
		copy.ID = "acct-" + strconv.Itoa(s.nextID)
	}
	s.accounts[copy.ID] = cloneAccount(copy)
	return copy, nil
}

// failingStore returns the same error from every method.
type failingStore struct {
	err error
}

func (s *failingStore) FindByEmail(context.Context, string) (*domain.Account, error) {
	return nil, s.err
}

func (s *failingStore) FindByID(context.Context, string) (*domain.Account, error) {
	return nil, s.err
}

func (s *failingStore) Save(context.Context, *domain.Account) (*domain.Account, error) {
	return nil, s.err
}

// plainHasher is a reversible stand-in for bcrypt so tests can assert on
// stored hashes without the cost of real hashing.
type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) {
	return "hash:" + plaintext, nil
}

func (plainHasher) Verify(plaintext, hash string) bool {
	return hash == "hash:"+plaintext
}

// stubIssuer records the last issued subject/role pair.
type stubIssuer struct {
	lastSubject string
	lastRole    string
	err         error
}

func (s *stubIssuer) Issue(subjectID, role string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.lastSubject = subjectID
	s.lastRole = role
	return "tok-" + role, nil
}

func (s *stubIssuer) Validate(string) (string, string, error) {
	return s.lastSubject, s.lastRole, nil
}

var errIssuerDown = errors.New("signing failure")

func newTestAuthService(admins, technicians, users ports.AccountStore, issuer ports.TokenIssuer) *AuthService {
	return NewAuthService(admins, technicians, users, plainHasher{}, security.NewStrengthPolicy(), issuer, zerolog.Nop())
}

func seedAccount(store *stubAccountStore, id, email, password string) *domain.Account {
	account := &domain.Account{
		ID:           id,
		FullName:     "Seeded",
		Email:        email,
		PhoneNumber:  "+10000000",
		PasswordHash: "hash:" + password,
	}
	store.accounts[id] = account
	return account
}
