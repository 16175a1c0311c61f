package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/padhoai/backend/internal/models"
	"go.uber.org/zap"
)

// Dialect names accepted by NewSQLStore
const (
	DialectMySQL  = "mysql"
	DialectSQLite = "sqlite3"
)

// upsertQueries holds the insert-or-replace statement of each dialect
var upsertQueries = map[string]string{
	DialectMySQL: `
		INSERT INTO kv_store (namespace, item_key, item_value, updated_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE item_value = VALUES(item_value), updated_at = VALUES(updated_at)
	`,
	DialectSQLite: `
		INSERT INTO kv_store (namespace, item_key, item_value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(namespace, item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at
	`,
}

// SQLStore keeps values in the kv_store table of a MySQL or SQLite database
type SQLStore struct {
	db          *sql.DB
	upsertQuery string
	logger      *zap.Logger
}

// NewSQLStore creates a store for the given dialect
func NewSQLStore(db *sql.DB, dialect string, logger *zap.Logger) (*SQLStore, error) {
	query, ok := upsertQueries[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported sql dialect: %s", dialect)
	}
	return &SQLStore{
		db:          db,
		upsertQuery: query,
		logger:      logger,
	}, nil
}

func (s *SQLStore) Get(ctx context.Context, namespace, key string) (string, error) {
	query := `
		SELECT item_value
		FROM kv_store
		WHERE namespace = ? AND item_key = ?
	`

	var value string
	err := s.db.QueryRowContext(ctx, query, namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrKeyNotFound
	}
	if err != nil {
		s.logger.Error("failed to query value", zap.Error(err), zap.String("namespace", namespace), zap.String("key", key))
		return "", fmt.Errorf("failed to query value: %w", err)
	}

	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, namespace, key, value string) error {
	_, err := s.db.ExecContext(ctx, s.upsertQuery, namespace, key, value, time.Now().UTC())
	if err != nil {
		s.logger.Error("failed to upsert value", zap.Error(err), zap.String("namespace", namespace), zap.String("key", key))
		return fmt.Errorf("failed to upsert value: %w", err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, namespace, key string) error {
	query := `DELETE FROM kv_store WHERE namespace = ? AND item_key = ?`

	if _, err := s.db.ExecContext(ctx, query, namespace, key); err != nil {
		s.logger.Error("failed to delete value", zap.Error(err), zap.String("namespace", namespace), zap.String("key", key))
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
