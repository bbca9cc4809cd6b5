// Package rest exposes the storefront services over HTTP+JSON.
package rest

import (
	"context"
	"net/http"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/access"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/logging"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/models"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/content"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/orders"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Identify(token string) (string, error)
}

type UserEntryService interface {
	List(ctx context.Context, email string) ([]access.Record, error)
	Admitted(ctx context.Context, email string) (bool, error)
}

type ContentService interface {
	List(ctx context.Context, collection string) ([]byte, error)
	Get(ctx context.Context, collection, id string) ([]byte, error)
}

type OrderService interface {
	Find(ctx context.Context, filter map[string]string) ([]models.Document, error)
	Get(ctx context.Context, id string) (models.Document, error)
	Create(ctx context.Context, doc models.Document) (string, error)
	Update(ctx context.Context, id string, set models.Document) (orders.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// Deps lists what the handlers need. RequireAdminForOrderWrites puts PUT
// and DELETE on /api/orders behind the admin check.
type Deps struct {
	Auth                       AuthService
	UserEntries                UserEntryService
	Content                    ContentService
	Orders                     OrderService
	Logger                     logging.Logger
	RequireAdminForOrderWrites bool
}

type handler struct {
	Deps
	logger logging.Logger
}

// NewRouter registers every route on a fresh ServeMux and wraps it with
// request logging.
func NewRouter(d Deps) http.Handler {
	h := &handler{Deps: d, logger: d.Logger.With("module", "rest")}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.health)

	mux.HandleFunc("POST /api/auth/login", h.login)
	mux.Handle("GET /api/auth/me", h.requireAuth(http.HandlerFunc(h.me)))

	mux.HandleFunc("GET /api/userEntries", h.userEntries)

	for _, c := range []string{content.Banners, content.Categories, content.Blogs, content.SiteInfo, content.Products} {
		mux.HandleFunc("GET /api/"+c, h.listContent(c))
	}
	mux.HandleFunc("GET /api/products/{id}", h.getContent(content.Products))

	write := func(f http.HandlerFunc) http.Handler {
		if d.RequireAdminForOrderWrites {
			return h.requireAdmin(f)
		}
		return f
	}
	mux.HandleFunc("GET /api/orders", h.findOrders)
	mux.HandleFunc("GET /api/orders/{id}", h.getOrder)
	mux.HandleFunc("POST /api/orders", h.createOrder)
	mux.Handle("PUT /api/orders", write(h.updateOrder))
	mux.Handle("PUT /api/orders/{id}", write(h.updateOrder))
	mux.Handle("DELETE /api/orders", write(h.deleteOrder))
	mux.Handle("DELETE /api/orders/{id}", write(h.deleteOrder))

	return h.logRequests(mux)
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"}, h.logger)
}
