package infra

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/Vovarama1992/bestelerim/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/multierr"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ConnectEngagementStore builds the store for dsn, pings and migrates it.
// A malformed DSN yields a nil store. An unreachable database or a failed
// migration still yields a store next to the error: the pool dials lazily,
// so later calls retry and Ping keeps reporting the outage. release closes
// the pool and is always safe to call.
func ConnectEngagementStore(ctx context.Context, dsn string, zl *logger.ZapLogger) (store ports.EngagementStore, release func(), err error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, func() {}, fmt.Errorf("pgxpool: %w", err)
	}
	store = NewPostgresEngagementStore(pool)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctxPing); err != nil {
		return store, pool.Close, fmt.Errorf("postgres ping: %w", err)
	}
	if err := Migrate(pool, zl); err != nil {
		return store, pool.Close, err
	}
	return store, pool.Close, nil
}

// Migrate applies the embedded goose migrations over a short-lived
// database/sql handle built from the pool's config.
func Migrate(pool *pgxpool.Pool, zl *logger.ZapLogger) (err error) {
	db := stdlib.OpenDB(*pool.Config().ConnConfig)
	defer func() {
		err = multierr.Append(err, db.Close())
	}()

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLogger{zl: zl})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

type gooseLogger struct {
	zl *logger.ZapLogger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.zl.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf(format, v...),
		Fields:  map[string]any{"component": "goose"},
	})
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.zl.Log(logger.LogEntry{
		Level:   "error",
		Message: fmt.Sprintf(format, v...),
		Fields:  map[string]any{"component": "goose"},
	})
	panic(fmt.Sprintf(format, v...))
}
