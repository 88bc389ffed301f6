package repos

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"github.com/jmoiron/sqlx"

	"teststore/internal/domain"
)

// AccountRepo reads and writes the two persisted keys: the full account
// list (one JSON array under KeyAccounts) and the active session username
// (plain string under KeySession, row absent when logged out). Writes are
// synchronous and whole-value; there is no multi-key atomicity and none is
// required.
type AccountRepo struct{ DB *sqlx.DB }

func NewAccountRepo(db *sqlx.DB) *AccountRepo { return &AccountRepo{DB: db} }

func (r *AccountRepo) get(key string) (string, bool, error) {
	var v string
	err := r.DB.Get(&v, `SELECT value FROM kv WHERE key=?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *AccountRepo) put(key, value string) error {
	_, err := r.DB.Exec(`
		INSERT INTO kv(key,value,updated_at) VALUES(?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=CURRENT_TIMESTAMP
	`, key, value)
	return err
}

// LoadAll returns the persisted account list. A missing key is an empty
// list; an unparseable value fails closed as an empty list rather than
// surfacing a parse error to the caller.
func (r *AccountRepo) LoadAll() ([]domain.Account, error) {
	raw, ok, err := r.get(KeyAccounts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Account{}, nil
	}
	var accounts []domain.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		log.Printf("[accounts] corrupt account list, treating as empty: %v", err)
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// SaveAll persists the full account list, replacing the previous value.
func (r *AccountRepo) SaveAll(accounts []domain.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return r.put(KeyAccounts, string(raw))
}

// Session returns the persisted session username, or "" when logged out.
func (r *AccountRepo) Session() (string, error) {
	v, _, err := r.get(KeySession)
	return v, err
}

func (r *AccountRepo) SetSession(username string) error {
	return r.put(KeySession, username)
}

func (r *AccountRepo) ClearSession() error {
	_, err := r.DB.Exec(`DELETE FROM kv WHERE key=?`, KeySession)
	return err
}
