package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"newshub-backend/models"
)

// ErrNoNews reports that the upstream returned zero articles. The store is
// left untouched in that case.
var ErrNoNews = errors.New("no news found")

// NewsSource fetches articles for a query term from an external provider.
type NewsSource interface {
	FetchEverything(ctx context.Context, query string) ([]models.Article, error)
}

// SyncStore is the subset of the article store the syncer writes through.
type SyncStore interface {
	ReplaceAll(ctx context.Context, articles []models.Article) error
}

// Syncer keeps the article store mirroring the latest upstream result set
// for a fixed query term. The manual HTTP trigger and the hourly scheduler
// both run through Sync; they differ only in how the outcome is reported.
type Syncer struct {
	source NewsSource
	store  SyncStore
	query  string
	logger *slog.Logger

	// Serializes concurrent runs so a manual trigger cannot interleave
	// with the hourly tick between delete and insert.
	mu sync.Mutex
}

func NewSyncer(source NewsSource, store SyncStore, query string, logger *slog.Logger) *Syncer {
	return &Syncer{
		source: source,
		store:  store,
		query:  query,
		logger: logger,
	}
}

// Sync fetches the latest articles and replaces the store contents with
// them. It returns the number of articles written, or ErrNoNews when the
// upstream had nothing for the query.
func (s *Syncer) Sync(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.source.FetchEverything(ctx, s.query)
	if err != nil {
		return 0, fmt.Errorf("fetch news: %w", err)
	}
	if len(articles) == 0 {
		return 0, ErrNoNews
	}

	if err := s.store.ReplaceAll(ctx, articles); err != nil {
		return 0, fmt.Errorf("replace articles: %w", err)
	}

	s.logger.Info("news synced", "count", len(articles), "query", s.query)
	return len(articles), nil
}
