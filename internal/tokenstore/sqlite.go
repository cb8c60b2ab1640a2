package tokenstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"shopfront/internal/common"
	"shopfront/internal/cryptox"
	"shopfront/internal/dbx"
	"shopfront/internal/tokenstore/migrations"
)

const nonceKey = common.TokenStorageKey + "_nonce"

// RunMigrations applies the embedded SQL migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the local SQLite database at dsn and
// brings its schema up to date.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// SQLiteRepository implements Repository over a metadata key/value table.
// The token is sealed with AES-GCM before it touches disk.
type SQLiteRepository struct {
	db  *sql.DB
	key []byte
}

// NewSQLiteRepository binds a repository to db using the given sealing key.
func NewSQLiteRepository(db *sql.DB, key []byte) *SQLiteRepository {
	return &SQLiteRepository{db: db, key: key}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

// Token returns the stored auth token, or "" when none is stored.
func (r *SQLiteRepository) Token(ctx context.Context) (string, error) {
	sealed, err := r.get(ctx, r.db, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	if sealed == nil {
		return "", nil
	}

	nonce, err := r.get(ctx, r.db, nonceKey)
	if err != nil {
		return "", err
	}

	plain, err := cryptox.Open(sealed, nonce, r.key)
	if err != nil {
		// Sealed with a different key or corrupted on disk.
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return string(plain), nil
}

// Set seals and writes the token. Writing the ciphertext and its nonce
// happens in one transaction so a crash cannot leave them mismatched.
func (r *SQLiteRepository) Set(ctx context.Context, token string) error {
	sealed, nonce, err := cryptox.Seal([]byte(token), r.key)
	if err != nil {
		return fmt.Errorf("sealing token: %w", err)
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, common.TokenStorageKey, sealed); err != nil {
			return err
		}
		return r.set(ctx, tx, nonceKey, nonce)
	})
}

// Clear removes the token and its nonce.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM metadata WHERE key IN (?, ?)`,
			common.TokenStorageKey, nonceKey)
		if err != nil {
			return fmt.Errorf("failed to clear token: %w", err)
		}
		return nil
	})
}

var _ Repository = (*SQLiteRepository)(nil)
