package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/common"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/dbx"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/models"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/content"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/orders"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/userentries"
)

func newSQLMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _ := newSQLMock(t)
	return db
}

func newSQLMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeRepoManager struct {
	users   *fakeUserEntries
	orders  *fakeOrders
	content *fakeContent
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) UserEntries(dbx.DBTX) userentries.Repository  { return m.users }
func (m *fakeRepoManager) Orders(dbx.DBTX) orders.Repository            { return m.orders }
func (m *fakeRepoManager) Content(dbx.DBTX) content.Repository          { return m.content }

type fakeUserEntries struct {
	byEmail   map[string]*models.UserEntry
	all       []models.UserEntry
	findErr   error
	listErr   error
	upsertErr error
	upserted  []*models.UserEntry
}

func (f *fakeUserEntries) List(context.Context) ([]models.UserEntry, error) {
	return f.all, f.listErr
}

func (f *fakeUserEntries) FindByEmail(_ context.Context, email string) (*models.UserEntry, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if e, ok := f.byEmail[email]; ok {
		return e, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUserEntries) Upsert(_ context.Context, e *models.UserEntry) (*models.UserEntry, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserted = append(f.upserted, e)
	return e, nil
}

type fakeOrders struct {
	filter  map[string]string
	id      string
	set     models.Document
	doc     models.Document
	res     orders.UpdateResult
	deleted int64
	err     error
	calls   int
}

func (f *fakeOrders) Find(_ context.Context, filter map[string]string) ([]models.Document, error) {
	f.calls++
	f.filter = filter
	return []models.Document{f.doc}, f.err
}

func (f *fakeOrders) Get(_ context.Context, id string) (models.Document, error) {
	f.calls++
	f.id = id
	return f.doc, f.err
}

func (f *fakeOrders) Insert(_ context.Context, doc models.Document) (string, error) {
	f.calls++
	f.doc = doc
	return "new-id", f.err
}

func (f *fakeOrders) Update(_ context.Context, id string, set models.Document) (orders.UpdateResult, error) {
	f.calls++
	f.id, f.set = id, set
	return f.res, f.err
}

func (f *fakeOrders) Delete(_ context.Context, id string) (int64, error) {
	f.calls++
	f.id = id
	return f.deleted, f.err
}

type fakeContent struct {
	docs  map[string][]models.Document
	err   error
	calls int
}

func (f *fakeContent) List(_ context.Context, collection string) ([]models.Document, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.docs[collection], nil
}

func (f *fakeContent) Get(_ context.Context, collection, id string) (models.Document, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.docs[collection] {
		if d[models.IDField] == id {
			return d, nil
		}
	}
	return nil, common.ErrorNotFound
}
