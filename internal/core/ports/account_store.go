package ports

import (
	"context"

	"github.com/fixserve/account-service/internal/core/domain"
)

// AccountStore is the persistence port for one role's accounts. Each role has
// its own disjoint store; ids and email uniqueness never cross stores.
//
// Find methods return (nil, nil) when no record matches so that callers own
// the not-found semantics for their operation.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// RoleStore pairs a role with the store that owns its accounts. Lookup logic
// iterates an ordered slice of these instead of inspecting record types.
type RoleStore struct {
	Role  domain.Role
	Store AccountStore
}
