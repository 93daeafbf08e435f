package ports

import (
	"context"

	"github.com/MadeCbt/roombooking/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// Create relies on a store-level uniqueness constraint on username: a
// duplicate insert must fail atomically with domain.ErrDuplicateUsername
// rather than depending on a separate lookup.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
