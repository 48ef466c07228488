package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	_ "github.com/lib/pq"

	"github.com/abmoura/vida/internal/keyring"
	"github.com/abmoura/vida/internal/logger"
)

// EnvConnectionString is the environment variable holding the PostgreSQL
// connection string, checked before the OS keyring.
const EnvConnectionString = "VIDA_DB_CONNECTION"

// PostgresStore persists the snapshot as a single JSON row. The dataset
// is one user's application state; relational decomposition buys nothing
// over the network, so the whole snapshot travels as one value.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Embedded credentials are rejected; they end
// up in shell history and process listings.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// ResolveConnectionString returns the full connection string to use,
// preferring the environment variable, then the OS keyring, then the
// given string as-is.
func ResolveConnectionString(connStr string) (string, error) {
	if env := os.Getenv(EnvConnectionString); env != "" {
		return env, nil
	}
	stored, err := keyring.GetConnectionString()
	if err == nil {
		return stored, nil
	}
	if err != keyring.ErrNotFound {
		logger.Warn("Keyring lookup failed, using connection string as-is", "error", err)
	}
	return connStr, nil
}

func (s *PostgresStore) Init() error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM snapshots WHERE id = 1)`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check snapshot: %w", err)
	}
	if !exists {
		return s.SaveState(DefaultState())
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}

	connStr, err := ResolveConnectionString(s.connStr)
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY,
			state JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *PostgresStore) LoadState() (*State, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.QueryRow(`SELECT state FROM snapshots WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return DefaultState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		logger.Warn("Snapshot is corrupt, starting from empty state", "error", err)
		return DefaultState(), nil
	}

	state.Normalize()
	return state, nil
}

func (s *PostgresStore) SaveState(state *State) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (id, state, updated_at) VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET state = EXCLUDED.state, updated_at = now()`,
		data)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// GetConfigPath returns the connection string with any user info masked.
func (s *PostgresStore) GetConfigPath() string {
	u, err := url.Parse(s.connStr)
	if err != nil || u.User == nil {
		return s.connStr
	}
	u.User = url.User(u.User.Username())
	return u.String()
}
