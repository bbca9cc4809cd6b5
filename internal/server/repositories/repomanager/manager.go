package repomanager

import (
	"context"
	"database/sql"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/dbx"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/content"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/orders"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/userentries"
)

// RepositoryManager vends repositories bound to a connection or transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	UserEntries(db dbx.DBTX) userentries.Repository
	Orders(db dbx.DBTX) orders.Repository
	Content(db dbx.DBTX) content.Repository
}
