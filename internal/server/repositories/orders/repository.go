// Package orders persists orders as opaque JSON documents.
package orders

import (
	"context"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/models"
)

// UpdateResult reports how many documents matched the id and how many of
// them actually changed.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type Repository interface {
	Find(ctx context.Context, filter map[string]string) ([]models.Document, error)
	Get(ctx context.Context, id string) (models.Document, error)
	Insert(ctx context.Context, doc models.Document) (string, error)
	Update(ctx context.Context, id string, set models.Document) (UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}
