package metadata

import (
	"context"
	"database/sql"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func setupRedis(t *testing.T) (*redis.Client, *mr.Miniredis) {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	cli := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = cli.Close() })
	return cli, m
}

// backends returns one fresh repository per implementation.
func backends(t *testing.T) map[string]func(t *testing.T) Repository {
	return map[string]func(t *testing.T) Repository{
		"sqlite": func(t *testing.T) Repository { return NewSQLiteRepository(setupDB(t)) },
		"redis": func(t *testing.T) Repository {
			cli, _ := setupRedis(t)
			return NewRedisRepository(cli, "test:")
		},
		"memory": func(t *testing.T) Repository { return NewMemoryRepository() },
	}
}

func TestRepository_Contract(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("set then get", func(t *testing.T) {
				r := newRepo(t)
				require.NoError(t, r.Set(ctx, "k1", []byte{0x01, 0x02}))

				v, err := r.Get(ctx, "k1")
				require.NoError(t, err)
				require.Equal(t, []byte{0x01, 0x02}, v)
			})

			t.Run("missing key is nil nil", func(t *testing.T) {
				r := newRepo(t)
				v, err := r.Get(ctx, "absent")
				require.NoError(t, err)
				require.Nil(t, v)
			})

			t.Run("set overwrites", func(t *testing.T) {
				r := newRepo(t)
				require.NoError(t, r.Set(ctx, "k", []byte("old")))
				require.NoError(t, r.Set(ctx, "k", []byte("new")))

				v, err := r.Get(ctx, "k")
				require.NoError(t, err)
				require.Equal(t, []byte("new"), v)
			})

			t.Run("delete is idempotent", func(t *testing.T) {
				r := newRepo(t)
				require.NoError(t, r.Set(ctx, "x", []byte{0x01}))
				require.NoError(t, r.Delete(ctx, "x"))

				v, err := r.Get(ctx, "x")
				require.NoError(t, err)
				require.Nil(t, v)

				require.NoError(t, r.Delete(ctx, "x"))
			})

			t.Run("empty value is not a missing key", func(t *testing.T) {
				r := newRepo(t)
				require.NoError(t, r.Set(ctx, "empty", nil))

				v, err := r.Get(ctx, "empty")
				require.NoError(t, err)
				require.NotNil(t, v)
				assert.Empty(t, v)
			})
		})
	}
}

func TestSQLiteRepository_ErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")

	require.ErrorContains(t, r.Set(ctx, "k", []byte("v")), "failed to set metadata[k]")
	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete metadata[k]")
}

func TestSQLiteRepository_SetNilStoresEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Empty(t, v)
}

func TestRedisRepository_UsesPrefix(t *testing.T) {
	cli, m := setupRedis(t)
	r := NewRedisRepository(cli, "")
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "session", []byte(`{}`)))
	require.True(t, m.Exists(DefaultRedisPrefix+"session"))

	// keys outside the prefix are not touched
	require.NoError(t, m.Set("session", "foreign"))
	require.NoError(t, r.Delete(ctx, "session"))
	require.True(t, m.Exists("session"))
	require.False(t, m.Exists(DefaultRedisPrefix+"session"))
}

func TestRedisRepository_ServerDown(t *testing.T) {
	cli, m := setupRedis(t)
	r := NewRedisRepository(cli, "t:")
	m.Close()

	_, err := r.Get(context.Background(), "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, r.Set(ctx, "k", in))
	in[0] = 'X'

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v)

	v[1] = 'Y'
	again, _ := r.Get(ctx, "k")
	require.Equal(t, []byte("abc"), again)
}
