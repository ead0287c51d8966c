package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/facility-directory/internal/config"
	"go.uber.org/zap"
)

// DB wraps the embedded file-backed database used for local development and
// tests. Unlike the remote backend, pending schema statements are applied on
// every startup.
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

func New(cfg *config.SQLiteConfig, logger *zap.Logger) (*DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create sqlite data dir: %w", err)
	}

	path := filepath.Join(cfg.DataDir, "facilities.db")
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_loc=UTC", path)

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// The embedded engine serializes writes; one connection avoids
	// SQLITE_BUSY churn under concurrent handlers.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}

	logger.Info("SQLite connected", zap.String("path", path))

	return &DB{DB: db, logger: logger}, nil
}

// NewInMemory opens a throwaway database for tests.
func NewInMemory(logger *zap.Logger) (*DB, error) {
	db, err := sqlx.Connect("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{DB: db, logger: logger}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing SQLite connection")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}
