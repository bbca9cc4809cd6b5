package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/access"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/common"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/repomanager"
)

type UserEntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserEntryService(db *sql.DB, m repomanager.RepositoryManager) *UserEntryService {
	return &UserEntryService{db: db, repomanager: m}
}

// List returns every authorization record, or only the one matching email
// when email is non-empty. The result is never nil.
func (s *UserEntryService) List(ctx context.Context, email string) ([]access.Record, error) {
	repo := s.repomanager.UserEntries(s.db)

	if email != "" {
		e, err := repo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return []access.Record{}, nil
			}
			return nil, fmt.Errorf("find user entry: %w", err)
		}
		return []access.Record{e.Record}, nil
	}

	entries, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user entries: %w", err)
	}
	records := make([]access.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.Record)
	}
	return records, nil
}

// Admitted applies access.Admits to the record stored for email. A missing
// record is not an error.
func (s *UserEntryService) Admitted(ctx context.Context, email string) (bool, error) {
	records, err := s.List(ctx, email)
	if err != nil {
		return false, err
	}
	rec, ok := access.Find(records, email)
	return ok && access.Admits(rec), nil
}
