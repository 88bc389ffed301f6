package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"teststore/internal/domain"
)

// Persisted storage is a flat key-value table with two live keys: the
// serialized account list and the active session username.
const (
	KeyAccounts = "accounts"
	KeySession  = "session"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite allows one writer; a single pooled connection also keeps
	// ":memory:" databases from splitting across connections.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the default account on first run (idempotent; safe every start)
	if err := seedDefaultAccount(db); err != nil {
		return nil, err
	}
	// Drop a persisted session that no longer names a stored account
	if err := pruneStaleSession(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS kv(
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

// seedDefaultAccount writes the seeded "admin" account when no accounts
// key exists yet. The well-known credentials are what the documented test
// scenarios log in with.
func seedDefaultAccount(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM kv WHERE key=?`, KeyAccounts); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting default account")

	repo := NewAccountRepo(db)
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return repo.SaveAll([]domain.Account{{
		Name:     "Admin",
		Email:    "admin@teststore.test",
		Username: "admin",
		Password: string(hash),
	}})
}

func pruneStaleSession(db *sqlx.DB) error {
	repo := NewAccountRepo(db)
	username, err := repo.Session()
	if err != nil {
		return err
	}
	if username == "" {
		return nil
	}
	accounts, err := repo.LoadAll()
	if err != nil {
		return err
	}
	for _, a := range accounts {
		if a.Username == username {
			return nil
		}
	}
	log.Printf("[seed] clearing stale session for %q", username)
	return repo.ClearSession()
}
