package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/common"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/models"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/orders"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/repomanager"
)

// OrderService is a pass-through over the order documents. It enforces
// only that ids are present and bodies are JSON objects.
type OrderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewOrderService(db *sql.DB, m repomanager.RepositoryManager) *OrderService {
	return &OrderService{db: db, repomanager: m}
}

func (s *OrderService) Find(ctx context.Context, filter map[string]string) ([]models.Document, error) {
	return s.repomanager.Orders(s.db).Find(ctx, filter)
}

func (s *OrderService) Get(ctx context.Context, id string) (models.Document, error) {
	if strings.TrimSpace(id) == "" {
		return nil, common.ErrorValidation
	}
	return s.repomanager.Orders(s.db).Get(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, doc models.Document) (string, error) {
	if doc == nil {
		return "", common.ErrorValidation
	}
	return s.repomanager.Orders(s.db).Insert(ctx, doc)
}

func (s *OrderService) Update(ctx context.Context, id string, set models.Document) (orders.UpdateResult, error) {
	if strings.TrimSpace(id) == "" || set == nil {
		return orders.UpdateResult{}, common.ErrorValidation
	}
	return s.repomanager.Orders(s.db).Update(ctx, id, set)
}

func (s *OrderService) Delete(ctx context.Context, id string) (int64, error) {
	if strings.TrimSpace(id) == "" {
		return 0, common.ErrorValidation
	}
	return s.repomanager.Orders(s.db).Delete(ctx, id)
}
