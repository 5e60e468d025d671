package ports

import (
	"context"

	"github.com/Vovarama1992/bestelerim/internal/models"
)

// EngagementStore keeps per-asset counters. Implementations must make
// Increment and Decrement single atomic upserts and never persist a
// negative count.
type EngagementStore interface {
	Increment(ctx context.Context, kind models.CounterKind, assetName string) (models.EngagementCounter, error)
	Decrement(ctx context.Context, kind models.CounterKind, assetName string) (models.EngagementCounter, error)
	Get(ctx context.Context, kind models.CounterKind, assetName string) (int64, error)
	ListAll(ctx context.Context, kind models.CounterKind, limit int) ([]models.EngagementCounter, error)
	Ping(ctx context.Context) error
}
