package ports

import "context"

// RegisterUserInput carries the fields accepted when creating a USER account.
type RegisterUserInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
	Address     string
}

// RegisterTechnicianInput carries the fields accepted when creating a
// TECHNICIAN account. ExperienceYears is optional.
type RegisterTechnicianInput struct {
	FullName        string
	Email           string
	PhoneNumber     string
	Password        string
	Address         string
	ExperienceYears *int
}

// AuthService orchestrates login, registration and password change across the
// three role stores.
type AuthService interface {
	// Login resolves the email across stores (admin, then technician, then
	// user) and returns a signed session token on success.
	Login(ctx context.Context, email, password string) (string, error)
	RegisterUser(ctx context.Context, input RegisterUserInput) error
	RegisterTechnician(ctx context.Context, input RegisterTechnicianInput) error
	// ChangePassword resolves the account by id across all stores in the
	// same precedence order as Login.
	ChangePassword(ctx context.Context, accountID, oldPassword, newPassword string) error
}
