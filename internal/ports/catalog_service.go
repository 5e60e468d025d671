package ports

import (
	"context"
	"time"

	"github.com/Vovarama1992/bestelerim/internal/models"
)

type EngagementEvent struct {
	Kind      models.CounterKind `json:"kind"`
	AssetName string             `json:"name"`
	Count     int64              `json:"count"`
	At        time.Time          `json:"at"`
}

const (
	StoreDisabled  = "disabled"
	StoreConnected = "connected"
	StoreError     = "error"
)

type CatalogService interface {
	GetCatalog(ctx context.Context) (*models.MediaResponse, error)
	RecordPlay(ctx context.Context, assetName string) (*models.EngagementCounter, error)
	ToggleLike(ctx context.Context, assetName string, action models.LikeAction) (int64, error)
	ListStats(ctx context.Context) ([]models.EngagementCounter, error)
	StoreStatus(ctx context.Context) string
	Events() <-chan EngagementEvent
}
