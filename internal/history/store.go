package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"

	// Pure Go SQLite driver (no CGO) for the local fallback store.
	_ "modernc.org/sqlite"
)

// bunStore implements Store over any bun-supported database.
type bunStore struct {
	db *bun.DB
}

var _ Store = (*bunStore)(nil)

// OpenPostgres connects to the remote attempt store. dsn is a standard
// postgres:// URL (a Supabase connection string works as-is). The schema
// is managed by `jmx-history migrate`, not here.
func OpenPostgres(dsn string) (Store, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	return &bunStore{db: db}, nil
}

// OpenSQLite opens (and if needed creates) a local attempt store at path.
// Used when no remote DSN is configured, so that the app still works
// offline with the same latest-wins semantics.
func OpenSQLite(path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = db.NewCreateTable().
		Model((*Attempt)(nil)).
		IfNotExists().
		Exec(context.Background())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create attempts table: %w", err)
	}

	return &bunStore{db: db}, nil
}

// DefaultSQLitePath resolves the local store location:
// $XDG_DATA_HOME/jmx-history/history.db, falling back to
// ~/.local/share/jmx-history/history.db.
func DefaultSQLitePath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "jmx-history", "history.db"), nil
}

func (s *bunStore) FetchStatus(ctx context.Context, userID string) (StatusMap, error) {
	var attempts []Attempt
	err := s.db.NewSelect().
		Model(&attempts).
		Column("id", "question_index", "is_correct", "timestamp").
		Where("user_id = ?", userID).
		Order("timestamp ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return StatusMap{}, fmt.Errorf("%w: fetch status: %v", ErrStoreUnavailable, err)
	}
	return Reduce(attempts), nil
}

func (s *bunStore) RecordAttempt(ctx context.Context, a Attempt) error {
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}
	_, err := s.db.NewInsert().Model(&a).Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: record attempt: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *bunStore) Reset(ctx context.Context, userID string) error {
	_, err := s.db.NewDelete().
		Model((*Attempt)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: reset history: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *bunStore) Close() error {
	return s.db.Close()
}

// DB exposes the underlying bun handle for the migrate command.
func (s *bunStore) DB() *bun.DB {
	return s.db
}

// Migratable is implemented by stores that expose their bun handle.
type Migratable interface {
	DB() *bun.DB
}
