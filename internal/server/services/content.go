package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/logging"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/cache"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/media"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/repomanager"
)

// ContentService serves the read-only storefront collections as ready JSON.
// Media references are presigned before encoding and the encoded body is
// cached. Cache failures are logged and otherwise ignored.
type ContentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       cache.Cache
	media       media.Resolver
	logger      logging.Logger
}

func NewContentService(db *sql.DB, m repomanager.RepositoryManager, c cache.Cache, r media.Resolver, l logging.Logger) *ContentService {
	return &ContentService{
		db:          db,
		repomanager: m,
		cache:       c,
		media:       r,
		logger:      l.With("module", "content"),
	}
}

// List returns the JSON array of a collection.
func (s *ContentService) List(ctx context.Context, collection string) ([]byte, error) {
	return s.cached(ctx, "content:"+collection, func() (any, error) {
		docs, err := s.repomanager.Content(s.db).List(ctx, collection)
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			if _, err := media.Rewrite(ctx, s.media, d); err != nil {
				return nil, err
			}
		}
		return docs, nil
	})
}

// Get returns one document of a collection. Missing ids yield
// common.ErrorNotFound.
func (s *ContentService) Get(ctx context.Context, collection, id string) ([]byte, error) {
	return s.cached(ctx, "content:"+collection+":"+id, func() (any, error) {
		doc, err := s.repomanager.Content(s.db).Get(ctx, collection, id)
		if err != nil {
			return nil, err
		}
		return media.Rewrite(ctx, s.media, doc)
	})
}

func (s *ContentService) cached(ctx context.Context, key string, load func() (any, error)) ([]byte, error) {
	if b, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn(ctx, "cache read failed", "key", key, "error", err)
	} else if ok {
		return b, nil
	}

	v, err := load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}

	if err := s.cache.Set(ctx, key, b); err != nil {
		s.logger.Warn(ctx, "cache write failed", "key", key, "error", err)
	}
	return b, nil
}
