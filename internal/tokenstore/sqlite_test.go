package tokenstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"shopfront/internal/common"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)

	return NewSQLiteRepository(db, common.GenerateRandByteArray(32))
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	tok, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, tok, "missing token must read as empty, not error")

	require.NoError(t, repo.Set(ctx, "jwt.header.payload"))

	tok, err = repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "jwt.header.payload", tok)
}

func TestSQLiteRepository_Overwrite(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "first"))
	require.NoError(t, repo.Set(ctx, "second"))

	tok, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "second", tok)
}

func TestSQLiteRepository_Clear(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "tok"))
	require.NoError(t, repo.Clear(ctx))

	tok, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestSQLiteRepository_TokenIsSealedOnDisk(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "plaintext-token"))

	var raw []byte
	err := repo.db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, common.TokenStorageKey).Scan(&raw)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "plaintext-token")
}

func TestSQLiteRepository_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM metadata").WillReturnError(sql.ErrConnDone)

	repo := NewSQLiteRepository(db, common.GenerateRandByteArray(32))
	_, err = repo.Token(context.Background())
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "client.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='metadata'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "metadata", name)
}

func TestLoadOrCreateKey_StableAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.key")

	k1, err := LoadOrCreateKey(path)
	require.NoError(t, err)
	require.Len(t, k1, 32)

	k2, err := LoadOrCreateKey(path)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
}

func TestCache_SingleWriter(t *testing.T) {
	repo := setupRepo(t)
	cache := NewCache(repo)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "persisted"))
	require.NoError(t, cache.Load(ctx))
	require.Equal(t, "persisted", cache.Token())

	require.NoError(t, cache.Set(ctx, "replaced"))
	require.Equal(t, "replaced", cache.Token())

	tok, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "replaced", tok, "Set must write through to durable storage")

	require.NoError(t, cache.Clear(ctx))
	require.Empty(t, cache.Token())
}
