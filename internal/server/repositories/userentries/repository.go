// Package userentries stores authorization records and sign-in credentials.
package userentries

import (
	"context"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.UserEntry, error)
	FindByEmail(ctx context.Context, email string) (*models.UserEntry, error)
	Upsert(ctx context.Context, e *models.UserEntry) (*models.UserEntry, error)
}
