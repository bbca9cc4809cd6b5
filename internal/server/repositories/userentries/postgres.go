package userentries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/common"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/dbx"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.UserEntry, error) {
	query :=
		`SELECT id, email, usertype, status, password_hash, created_at
		 FROM user_entries
		 ORDER BY created_at, email`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	entries := []models.UserEntry{}
	for rows.Next() {
		var e models.UserEntry
		if err := rows.Scan(&e.ID, &e.Record.Email, &e.Record.UserType, &e.Record.Status, &e.PasswordHash, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entries, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.UserEntry, error) {
	query :=
		`SELECT id, email, usertype, status, password_hash, created_at
		 FROM user_entries
		 WHERE email = $1`

	e := &models.UserEntry{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&e.ID, &e.Record.Email, &e.Record.UserType, &e.Record.Status, &e.PasswordHash, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

// Upsert inserts the entry or, when the email already exists, replaces its
// type, status and password hash.
func (r *PostgresRepository) Upsert(ctx context.Context, e *models.UserEntry) (*models.UserEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO user_entries (id, email, usertype, status, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO UPDATE
		 SET usertype = EXCLUDED.usertype, status = EXCLUDED.status, password_hash = EXCLUDED.password_hash
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.Record.Email, string(e.Record.UserType), string(e.Record.Status), e.PasswordHash).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}
