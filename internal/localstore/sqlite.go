package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS local_state (
	owner TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (owner, key)
);
`

type SQLite struct {
	db *sqlx.DB
}

// OpenSQLite opens (and creates, if needed) the local state database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local state: %w", err)
	}
	// sqlite serialises writers; a single connection also keeps ":memory:"
	// databases from splitting per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate local state: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Get(ctx context.Context, owner, key string) ([]byte, bool, error) {
	const q = `SELECT value FROM local_state WHERE owner = ? AND key = ?`
	var value string
	err := s.db.GetContext(ctx, &value, q, owner, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get local state %s/%s: %w", owner, key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLite) Set(ctx context.Context, owner, key string, value []byte) error {
	const q = `
		INSERT INTO local_state (owner, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(owner, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, q, owner, key, string(value), time.Now().UTC()); err != nil {
		return fmt.Errorf("set local state %s/%s: %w", owner, key, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, owner, key string) error {
	const q = `DELETE FROM local_state WHERE owner = ? AND key = ?`
	if _, err := s.db.ExecContext(ctx, q, owner, key); err != nil {
		return fmt.Errorf("delete local state %s/%s: %w", owner, key, err)
	}
	return nil
}
