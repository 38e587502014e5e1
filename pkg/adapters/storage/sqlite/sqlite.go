package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aescanero/kvitems/pkg/ports"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Compile-time interface check.
var _ ports.ItemStore = (*ItemStore)(nil)

// ItemStore implements ItemStore using an embedded SQLite database
type ItemStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewItemStore opens (or creates) the database at path and creates the items
// table if it does not exist. Use ":memory:" for an in-memory database.
func NewItemStore(path string, logger *zap.Logger) (*ItemStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// One shared connection: SQLite serializes writers anyway, and every
	// ":memory:" connection would otherwise see its own empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS items (
			id    INTEGER PRIMARY KEY,
			value TEXT
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create items table: %w", err)
	}

	logger.Info("sqlite item store ready", zap.String("path", path))

	return &ItemStore{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert inserts the item or overwrites the value of the existing row
func (s *ItemStore) Upsert(ctx context.Context, id int64, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, value) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET value = excluded.value
	`, id, value)
	if err != nil {
		return &ports.StoreError{Op: "upsert", Err: err}
	}

	s.logger.Debug("item upserted", zap.Int64("id", id))
	return nil
}

// Get returns the value stored for id
func (s *ItemStore) Get(ctx context.Context, id int64) (string, bool, error) {
	var value sql.NullString

	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM items WHERE id = ?`, id,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &ports.StoreError{Op: "get", Err: err}
	}

	return value.String, true, nil
}

// Close closes the underlying database handle
func (s *ItemStore) Close() error {
	return s.db.Close()
}
