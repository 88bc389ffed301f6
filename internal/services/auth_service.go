package services

import (
	"golang.org/x/crypto/bcrypt"

	"teststore/internal/domain"
	"teststore/internal/repos"
)

type AuthService struct {
	Accounts *repos.AccountRepo
}

// Register appends a new account and persists the full list. Usernames
// are unique (case-sensitive exact match); a clash fails with
// ErrDuplicateUsername and leaves the stored list untouched. Registration
// never logs the new account in.
func (s *AuthService) Register(name, email, username, password string) error {
	accounts, err := s.Accounts.LoadAll()
	if err != nil {
		return err
	}
	for _, a := range accounts {
		if a.Username == username {
			return domain.ErrDuplicateUsername
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	accounts = append(accounts, domain.Account{
		Name:     name,
		Email:    email,
		Username: username,
		Password: string(hash),
	})
	return s.Accounts.SaveAll(accounts)
}

// Login succeeds only on an exact match of username and password against
// a stored account. On success the session pointer is persisted. The
// submitted password is never retained beyond the comparison.
func (s *AuthService) Login(username, password string) error {
	accounts, err := s.Accounts.LoadAll()
	if err != nil {
		return err
	}
	for _, a := range accounts {
		if a.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
			return domain.ErrInvalidCredentials
		}
		return s.Accounts.SetSession(username)
	}
	return domain.ErrInvalidCredentials
}

func (s *AuthService) Logout() error {
	return s.Accounts.ClearSession()
}

// Current returns the authenticated username, or "" when logged out.
func (s *AuthService) Current() string {
	username, err := s.Accounts.Session()
	if err != nil {
		return ""
	}
	return username
}

