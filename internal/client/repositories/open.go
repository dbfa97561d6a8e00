// Package repositories opens the client's local storage backends.
package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/notekeeper/internal/client/migrations"
	"github.com/dmitrijs2005/notekeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/notekeeper/internal/filex"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Supported storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Options selects and configures a metadata backend.
type Options struct {
	Driver     string
	SQLitePath string
	RedisURL   string
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed) the database at dsn and applies
// the embedded migrations.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn != ":memory:" {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// a single connection keeps ":memory:" databases coherent and avoids
	// SQLITE_BUSY from concurrent writers
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// OpenRedis connects to url and checks the server answers a PING.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis parse url: %w", err)
	}
	cli := redis.NewClient(opts)
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return cli, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenMetadata returns the metadata repository for o.Driver and a closer
// releasing the underlying connection.
func OpenMetadata(ctx context.Context, o Options) (metadata.Repository, io.Closer, error) {
	switch o.Driver {
	case DriverSQLite, "":
		db, err := OpenSQLite(ctx, o.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return metadata.NewSQLiteRepository(db), db, nil

	case DriverRedis:
		cli, err := OpenRedis(ctx, o.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return metadata.NewRedisRepository(cli, metadata.DefaultRedisPrefix), cli, nil

	case DriverMemory:
		return metadata.NewMemoryRepository(), nopCloser{}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", o.Driver)
	}
}
