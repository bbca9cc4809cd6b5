package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

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

// buildFilter turns field=value pairs into a WHERE clause. Keys are sorted so
// the generated SQL is stable; both keys and values travel as parameters.
func buildFilter(filter map[string]string) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var conds []string
	var args []any
	for _, k := range keys {
		if k == models.IDField {
			args = append(args, filter[k])
			conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
			continue
		}
		args = append(args, k, filter[k])
		conds = append(conds, fmt.Sprintf("doc ->> $%d = $%d", len(args)-1, len(args)))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostgresRepository) Find(ctx context.Context, filter map[string]string) ([]models.Document, error) {
	where, args := buildFilter(filter)
	query := `SELECT id, doc FROM orders` + where + ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
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

func (r *PostgresRepository) Get(ctx context.Context, id string) (models.Document, error) {
	query := `SELECT doc FROM orders WHERE id = $1`

	var raw []byte
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return models.DecodeDocument(id, raw)
}

// Insert stores doc under a freshly generated id. A client-supplied _id is
// discarded.
func (r *PostgresRepository) Insert(ctx context.Context, doc models.Document) (string, error) {
	raw, err := doc.WithoutID()
	if err != nil {
		return "", fmt.Errorf("encode order: %w", err)
	}

	id := uuid.NewString()
	query := `INSERT INTO orders (id, doc) VALUES ($1, $2::jsonb)`
	if _, err := r.db.ExecContext(ctx, query, id, string(raw)); err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// Update merges the top-level fields of set into the stored document. Fields
// not named in set are left untouched.
func (r *PostgresRepository) Update(ctx context.Context, id string, set models.Document) (UpdateResult, error) {
	raw, err := set.WithoutID()
	if err != nil {
		return UpdateResult{}, fmt.Errorf("encode order: %w", err)
	}

	query :=
		`WITH target AS (
		     SELECT id, doc FROM orders WHERE id = $1
		 ), changed AS (
		     UPDATE orders o SET doc = o.doc || $2::jsonb
		     FROM target t
		     WHERE o.id = t.id AND (t.doc || $2::jsonb) <> t.doc
		     RETURNING o.id
		 )
		 SELECT (SELECT count(*) FROM target), (SELECT count(*) FROM changed)`

	var res UpdateResult
	if err := r.db.QueryRowContext(ctx, query, id, string(raw)).Scan(&res.MatchedCount, &res.ModifiedCount); err != nil {
		return UpdateResult{}, fmt.Errorf("db error: %w", err)
	}
	return res, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return dbx.RowsAffected(res), nil
}
