// Package content reads the marketing collections (banners, categories,
// blogs, site info) and the product catalogue.
package content

import (
	"context"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/models"
)

// Collection names.
const (
	Banners    = "ads-banner"
	Categories = "categories"
	Blogs      = "blogs"
	SiteInfo   = "site-info"
	Products   = "products"
)

type Repository interface {
	List(ctx context.Context, collection string) ([]models.Document, error)
	Get(ctx context.Context, collection, id string) (models.Document, error)
}
