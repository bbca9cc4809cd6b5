// Package services contains the server-side business logic behind the REST
// handlers.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/access"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/common"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/dbx"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/auth"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/config"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/models"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/repomanager"
)

// AuthService signs shoppers and staff in and resolves access tokens back
// to an email.
type AuthService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Login checks the password and returns a signed access token. Unknown
// emails and wrong passwords both yield ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", common.ErrorUnauthorized
	}

	repo := s.repomanager.UserEntries(s.db)
	entry, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if entry.PasswordHash == "" || !auth.CheckPassword(entry.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(entry.Record.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Identify returns the email carried by a valid access token.
func (s *AuthService) Identify(token string) (string, error) {
	email, err := auth.EmailFromToken(token, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}
	return email, nil
}

// EnsureAccount creates or refreshes an active account of the given type.
// An account that already matches is left untouched so its hash and id stay
// stable across restarts.
func (s *AuthService) EnsureAccount(ctx context.Context, email, password string, t access.UserType) error {
	rec := access.Record{Email: strings.TrimSpace(email), UserType: t, Status: access.StatusActive}
	if !rec.Validate() || password == "" {
		return common.ErrorValidation
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.UserEntries(tx)

		entry, err := repo.FindByEmail(ctx, rec.Email)
		switch {
		case errors.Is(err, common.ErrorNotFound):
			entry = &models.UserEntry{}
		case err != nil:
			return fmt.Errorf("load account %s: %w", rec.Email, err)
		case entry.Record == rec && auth.CheckPassword(entry.PasswordHash, password):
			return nil
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		entry.Record = rec
		entry.PasswordHash = hash

		if _, err := repo.Upsert(ctx, entry); err != nil {
			return fmt.Errorf("save account %s: %w", rec.Email, err)
		}
		return nil
	})
}
