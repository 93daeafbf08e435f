package ports

import (
	"context"

	"github.com/MadeCbt/roombooking/internal/core/domain"
)

// AuthService implements registration and login. Login issues no token or
// session; the returned user carries only what is safe to show a client.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
}
