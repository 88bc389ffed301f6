package domain

import "errors"

// Account is a registered user. The Password field is opaque to callers;
// at rest it holds a bcrypt hash, never the raw password.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
