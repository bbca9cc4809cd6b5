package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/common"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/dbx"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, collection string) ([]models.Document, error) {
	query :=
		`SELECT id, doc FROM content_documents
		 WHERE collection = $1
		 ORDER BY position, id`

	rows, err := r.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		doc, err := models.DecodeDocument(id, raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return docs, nil
}

func (r *PostgresRepository) Get(ctx context.Context, collection, id string) (models.Document, error) {
	query := `SELECT doc FROM content_documents WHERE collection = $1 AND id = $2`

	var raw []byte
	if err := r.db.QueryRowContext(ctx, query, collection, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return models.DecodeDocument(id, raw)
}
