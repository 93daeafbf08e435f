package domain

import (
	"errors"
	"time"
)

var ErrDuplicateUsername = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a registered account. Role is advisory only: it is stored and
// returned to the client but never enforced by any access check.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
