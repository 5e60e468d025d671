package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vovarama1992/bestelerim/internal/models"
	"github.com/Vovarama1992/bestelerim/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresEngagementStore struct {
	pool *pgxpool.Pool
}

func NewPostgresEngagementStore(pool *pgxpool.Pool) ports.EngagementStore {
	return &PostgresEngagementStore{pool: pool}
}

// Increment is one upsert; the row lock serialises concurrent callers on
// the same asset, so no update is lost.
func (r *PostgresEngagementStore) Increment(
	ctx context.Context,
	kind models.CounterKind,
	assetName string,
) (models.EngagementCounter, error) {

	query := `
		INSERT INTO engagement_counters (kind, asset_name, count, last_event_at)
		VALUES ($1, $2, 1, now())
		ON CONFLICT (kind, asset_name)
		DO UPDATE SET
			count         = engagement_counters.count + 1,
			last_event_at = EXCLUDED.last_event_at
		RETURNING asset_name, count, last_event_at
	`
	c, err := r.scanOne(ctx, query, string(kind), assetName)
	if err != nil {
		return c, fmt.Errorf("increment %s/%s: %w", kind, assetName, err)
	}
	return c, nil
}

// Decrement floors at zero inside the same statement. A fresh asset is
// created at 0, never at -1.
func (r *PostgresEngagementStore) Decrement(
	ctx context.Context,
	kind models.CounterKind,
	assetName string,
) (models.EngagementCounter, error) {

	query := `
		INSERT INTO engagement_counters (kind, asset_name, count, last_event_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (kind, asset_name)
		DO UPDATE SET
			count         = GREATEST(engagement_counters.count - 1, 0),
			last_event_at = EXCLUDED.last_event_at
		RETURNING asset_name, count, last_event_at
	`
	c, err := r.scanOne(ctx, query, string(kind), assetName)
	if err != nil {
		return c, fmt.Errorf("decrement %s/%s: %w", kind, assetName, err)
	}
	return c, nil
}

func (r *PostgresEngagementStore) Get(ctx context.Context, kind models.CounterKind, assetName string) (int64, error) {
	query := `
		SELECT count
		FROM engagement_counters
		WHERE kind = $1 AND asset_name = $2
	`
	var n int64
	err := r.pool.QueryRow(ctx, query, string(kind), assetName).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get %s/%s: %w", kind, assetName, err)
	}
	return n, nil
}

func (r *PostgresEngagementStore) ListAll(ctx context.Context, kind models.CounterKind, limit int) ([]models.EngagementCounter, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT asset_name, count, last_event_at
         FROM engagement_counters
         WHERE kind = $1
         ORDER BY count DESC, asset_name ASC
         LIMIT $2`,
		string(kind), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.EngagementCounter])
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return out, nil
}

func (r *PostgresEngagementStore) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresEngagementStore) scanOne(ctx context.Context, query string, args ...any) (models.EngagementCounter, error) {
	var c models.EngagementCounter
	err := r.pool.QueryRow(ctx, query, args...).Scan(&c.AssetName, &c.Count, &c.LastEventAt)
	return c, err
}
