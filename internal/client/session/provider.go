// Package session is the client's identity provider: it keeps the access
// token in local storage and reports (identity, loading) to the guards.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/client"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/guard"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/common"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/logging"
)

type TokenStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type AuthAPI interface {
	SetToken(token string)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (string, error)
}

// Provider starts in the loading state; Restore resolves it.
type Provider struct {
	store TokenStore
	api   AuthAPI
	log   logging.Logger

	mu       sync.RWMutex
	identity *guard.Identity
	loading  bool
}

func NewProvider(store TokenStore, api AuthAPI, l logging.Logger) *Provider {
	return &Provider{store: store, api: api, log: l, loading: true}
}

// Current returns a copy of the identity (nil when signed out) and whether
// resolution is still in progress.
func (p *Provider) Current() (*guard.Identity, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.identity == nil {
		return nil, p.loading
	}
	id := *p.identity
	return &id, p.loading
}

// Restore loads a persisted token and resolves it against the server. A
// rejected token is dropped; other failures leave the visitor signed out
// for this run without discarding the token.
func (p *Provider) Restore(ctx context.Context) {
	p.setLoading(true)
	defer p.setLoading(false)

	raw, err := p.store.Get(ctx, common.AccessTokenStorageKey)
	if err != nil {
		p.log.Error(ctx, "reading stored token", "error", err)
		p.set(nil)
		return
	}
	if len(raw) == 0 {
		p.set(nil)
		return
	}

	p.api.SetToken(string(raw))
	email, err := p.api.Me(ctx)
	switch {
	case err == nil:
		p.set(&guard.Identity{Email: email})
	case errors.Is(err, client.ErrUnauthorized):
		p.log.Info(ctx, "stored session expired")
		p.api.SetToken("")
		if derr := p.store.Delete(ctx, common.AccessTokenStorageKey); derr != nil {
			p.log.Warn(ctx, "dropping stale token", "error", derr)
		}
		p.set(nil)
	default:
		p.log.Error(ctx, "resolving identity", "error", err)
		p.set(nil)
	}
}

func (p *Provider) Login(ctx context.Context, email, password string) error {
	token, err := p.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := p.store.Set(ctx, common.AccessTokenStorageKey, []byte(token)); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	p.mu.Lock()
	p.identity = &guard.Identity{Email: email}
	p.loading = false
	p.mu.Unlock()
	return nil
}

func (p *Provider) Logout(ctx context.Context) error {
	p.api.SetToken("")
	p.set(nil)
	if err := p.store.Delete(ctx, common.AccessTokenStorageKey); err != nil {
		return fmt.Errorf("forget token: %w", err)
	}
	return nil
}

func (p *Provider) set(id *guard.Identity) {
	p.mu.Lock()
	p.identity = id
	p.mu.Unlock()
}

func (p *Provider) setLoading(v bool) {
	p.mu.Lock()
	p.loading = v
	p.mu.Unlock()
}
