package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/models"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/common"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/logging"
)

// Storage is the durable key-value medium the cart lives in.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store performs read-modify-write over the whole persisted list on every
// call. It is not atomic across processes sharing the same storage; the
// last write wins.
type Store struct {
	storage Storage
	key     string
	log     logging.Logger
}

func NewStore(s Storage, l logging.Logger) *Store {
	return &Store{storage: s, key: common.CartStorageKey, log: l}
}

// Read returns the persisted items in order. A missing value, unreadable
// storage or undecodable JSON all yield an empty list.
func (s *Store) Read(ctx context.Context) []LineItem {
	raw, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.log.Error(ctx, "cart read failed", "error", err)
		return []LineItem{}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return []LineItem{}
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn(ctx, "cart blob is corrupt, treating as empty", "error", err)
		return []LineItem{}
	}
	if items == nil {
		return []LineItem{}
	}
	return items
}

// Write replaces the persisted list with items.
func (s *Store) Write(ctx context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.storage.Set(ctx, s.key, b); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

// Add merges quantity into the line keyed by (p.ID, color, size), or appends
// a new line built from p. A zero quantity means one unit; negative values
// are applied as given.
func (s *Store) Add(ctx context.Context, p models.Product, quantity int, color, size *string) ([]LineItem, error) {
	// 0 stands in for an unspecified quantity, so an explicit zero also adds
	// one unit.
	if quantity == 0 {
		quantity = 1
	}

	items := s.Read(ctx)
	found := false
	for i := range items {
		if items[i].Matches(p.ID, color, size) {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, LineItem{
			ID:            p.ID,
			Title:         p.Title,
			Price:         p.Price,
			Currency:      p.Currency,
			Image:         p.FirstImage(),
			Quantity:      quantity,
			SelectedColor: cloneVariant(color),
			SelectedSize:  cloneVariant(size),
		})
	}

	return items, s.commit(ctx, "add", items)
}

// Remove drops every line matching the key. The list is rewritten even when
// nothing matched.
func (s *Store) Remove(ctx context.Context, productID string, color, size *string) ([]LineItem, error) {
	current := s.Read(ctx)
	items := make([]LineItem, 0, len(current))
	for _, it := range current {
		if !it.Matches(productID, color, size) {
			items = append(items, it)
		}
	}
	return items, s.commit(ctx, "remove", items)
}

// UpdateQuantity sets the quantity of the matching line verbatim, zero and
// negative values included, and returns the full list either way.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int, color, size *string) ([]LineItem, error) {
	items := s.Read(ctx)
	for i := range items {
		if items[i].Matches(productID, color, size) {
			items[i].Quantity = quantity
			break
		}
	}
	return items, s.commit(ctx, "update quantity", items)
}

func (s *Store) commit(ctx context.Context, op string, items []LineItem) error {
	if err := s.Write(ctx, items); err != nil {
		s.log.Error(ctx, "cart "+op+" not persisted", "error", err)
		return err
	}
	return nil
}
