package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vovarama1992/bestelerim/internal/models"
	"github.com/Vovarama1992/bestelerim/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultStatsLimit = 100
	likeLookupWorkers = 8
	eventBuffer       = 100
)

type CatalogService struct {
	fetcher *CatalogFetcher
	store   ports.EngagementStore // nil → engagement features disabled

	statsLimit int
	log        *logger.ZapLogger
	events     chan ports.EngagementEvent
}

// NewCatalogService wires the fetcher and an optional store. Pass a nil
// store to run the catalog without likes, plays or stats.
func NewCatalogService(
	fetcher *CatalogFetcher,
	store ports.EngagementStore,
	statsLimit int,
	log *logger.ZapLogger,
) *CatalogService {
	if statsLimit <= 0 {
		statsLimit = DefaultStatsLimit
	}
	return &CatalogService{
		fetcher:    fetcher,
		store:      store,
		statsLimit: statsLimit,
		log:        log,
		events:     make(chan ports.EngagementEvent, eventBuffer),
	}
}

func (s *CatalogService) Events() <-chan ports.EngagementEvent { return s.events }

// ========================================================================
// CATALOG
// ========================================================================
func (s *CatalogService) GetCatalog(ctx context.Context) (*models.MediaResponse, error) {
	files, err := s.fetcher.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if s.store != nil && len(files) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(likeLookupWorkers)

		for i := range files {
			g.Go(func() error {
				n, err := s.store.Get(gctx, models.CounterLikes, files[i].Name)
				if err != nil {
					return fmt.Errorf("likes for %q: %w", files[i].Name, err)
				}
				files[i].Likes = &n
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return &models.MediaResponse{
		Files: files,
		Repo:  s.fetcher.Repo(),
		Total: len(files),
	}, nil
}

// ========================================================================
// ENGAGEMENT
// ========================================================================
func (s *CatalogService) RecordPlay(ctx context.Context, assetName string) (*models.EngagementCounter, error) {
	if err := s.precheck(assetName); err != nil {
		return nil, err
	}

	c, err := s.store.Increment(ctx, models.CounterPlays, assetName)
	if err != nil {
		return nil, fmt.Errorf("record play: %w", err)
	}

	s.publish(models.CounterPlays, c)
	return &c, nil
}

// ToggleLike applies "like" or "unlike". Anything else is rejected with
// ports.ErrInvalidAction rather than being treated as a like.
func (s *CatalogService) ToggleLike(ctx context.Context, assetName string, action models.LikeAction) (int64, error) {
	if err := s.precheck(assetName); err != nil {
		return 0, err
	}

	var (
		c   models.EngagementCounter
		err error
	)
	switch models.LikeAction(strings.ToLower(string(action))) {
	case models.ActionLike:
		c, err = s.store.Increment(ctx, models.CounterLikes, assetName)
	case models.ActionUnlike:
		c, err = s.store.Decrement(ctx, models.CounterLikes, assetName)
	default:
		return 0, fmt.Errorf("%w: %q", ports.ErrInvalidAction, action)
	}
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", action, assetName, err)
	}

	s.publish(models.CounterLikes, c)
	return c.Count, nil
}

// ListStats returns play counters, capped at the configured limit. Without
// a store it is simply empty.
func (s *CatalogService) ListStats(ctx context.Context) ([]models.EngagementCounter, error) {
	if s.store == nil {
		return []models.EngagementCounter{}, nil
	}
	stats, err := s.store.ListAll(ctx, models.CounterPlays, s.statsLimit)
	if err != nil {
		return nil, fmt.Errorf("list stats: %w", err)
	}
	if stats == nil {
		stats = []models.EngagementCounter{}
	}
	return stats, nil
}

func (s *CatalogService) StoreStatus(ctx context.Context) string {
	if s.store == nil {
		return ports.StoreDisabled
	}
	if err := s.store.Ping(ctx); err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "store ping failed",
			Error:   err,
		})
		return ports.StoreError
	}
	return ports.StoreConnected
}

func (s *CatalogService) precheck(assetName string) error {
	if s.store == nil {
		return ports.ErrStoreUnavailable
	}
	if strings.TrimSpace(assetName) == "" {
		return ports.ErrEmptyAssetName
	}
	return nil
}

// publish never blocks the request: a full buffer drops the event.
func (s *CatalogService) publish(kind models.CounterKind, c models.EngagementCounter) {
	ev := ports.EngagementEvent{
		Kind:      kind,
		AssetName: c.AssetName,
		Count:     c.Count,
		At:        time.Now().UTC(),
	}
	if c.LastEventAt != nil {
		ev.At = *c.LastEventAt
	}

	select {
	case s.events <- ev:
	default:
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "engagement event dropped",
			Fields:  map[string]any{"kind": kind, "asset": c.AssetName},
		})
	}
}
