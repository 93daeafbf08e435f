package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MadeCbt/roombooking/internal/core/domain"
	"github.com/MadeCbt/roombooking/internal/core/ports"
)

// dummyHash is a valid bcrypt hash compared against on the unknown-username
// path so that login failures take comparable time whether or not the
// account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration and login.
type AuthService struct {
	repo ports.AuthRepository
	cost int
}

func NewAuthService(repo ports.AuthRepository) *AuthService {
	return &AuthService{repo: repo, cost: bcrypt.DefaultCost}
}

// Register creates a new account with a bcrypt-hashed password. Username
// uniqueness is enforced by the repository's unique index, not by a
// separate lookup, so concurrent duplicate registrations cannot both win.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the password against the stored hash. An unknown username
// and a wrong password return the identical error so the caller cannot
// probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// burn a compare anyway to keep the not-found path slow
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
