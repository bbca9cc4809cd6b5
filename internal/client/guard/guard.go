// Package guard decides whether protected client views may render.
//
// AdminGuard gates the admin area: it looks up the signed-in identity's
// authorization record and either admits it or redirects to a verification
// route. LoginGate is the lighter authenticated-only policy; it never
// navigates on its own and instead offers the user a choice.
package guard

import (
	"context"
	"slices"
	"sync"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/access"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/logging"
)

const (
	DefaultFallbackRoute = "/admin-verify"
	DefaultLandingRoute  = "/admin"
	LoginRoute           = "/login"
)

// Identity is the signed-in principal as reported by the identity provider.
type Identity struct {
	Email string
}

// RecordSource fetches authorization records. The email is a lookup hint;
// implementations may ignore it and return every record.
type RecordSource interface {
	UserEntries(ctx context.Context, email string) ([]access.Record, error)
}

// Navigator performs client-side route changes.
type Navigator interface {
	Redirect(route string)
}

type State int

const (
	Pending State = iota
	Admitted
	Denied
	Absent
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Admitted:
		return "admitted"
	case Denied:
		return "denied"
	case Absent:
		return "absent"
	default:
		return "unknown"
	}
}

// Decision is the outcome of one evaluation. Redirect is empty when no
// navigation was triggered.
type Decision struct {
	State    State
	Redirect string
}

type evalKey struct {
	email   string
	present bool
	loading bool
}

type AdminGuard struct {
	src  RecordSource
	nav  Navigator
	log  logging.Logger
	opts options

	mu       sync.Mutex
	gen      uint64
	cached   bool
	key      evalKey
	decision Decision
}

func NewAdminGuard(src RecordSource, nav Navigator, l logging.Logger, opts ...Option) *AdminGuard {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &AdminGuard{src: src, nav: nav, log: l, opts: o}
}

// Evaluate runs the admission state machine for the given identity and
// loading flag. The first evaluation of an (identity, loading) pair may fetch
// records and redirect once; later evaluations of the same pair return the
// cached state without side effects and with an empty Redirect.
func (g *AdminGuard) Evaluate(ctx context.Context, id *Identity, loading bool, location string) Decision {
	key := evalKey{loading: loading}
	if id != nil {
		key.present = true
		key.email = id.Email
	}

	g.mu.Lock()
	if g.cached && g.key == key {
		d := Decision{State: g.decision.State}
		g.mu.Unlock()
		return d
	}
	gen := g.gen
	g.mu.Unlock()

	// the lookup may block on the network; State stays readable meanwhile
	d, final := g.decide(ctx, id, loading, location)

	g.mu.Lock()
	if gen != g.gen {
		// reset or superseded while fetching
		g.mu.Unlock()
		return Decision{State: Pending}
	}
	g.gen++
	g.cached = final
	if final {
		g.key = key
		g.decision = d
	}
	g.mu.Unlock()

	if d.Redirect != "" {
		g.nav.Redirect(d.Redirect)
	}
	return d
}

// State returns the most recent cached state, or Pending.
func (g *AdminGuard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.cached {
		return Pending
	}
	return g.decision.State
}

// Reset forgets the cached decision so the next evaluation starts over.
func (g *AdminGuard) Reset() {
	g.mu.Lock()
	g.gen++
	g.cached = false
	g.decision = Decision{}
	g.mu.Unlock()
}

func (g *AdminGuard) decide(ctx context.Context, id *Identity, loading bool, location string) (Decision, bool) {
	if loading {
		return Decision{State: Pending}, true
	}
	if id == nil {
		return Decision{State: Absent, Redirect: g.opts.fallback}, true
	}

	records, err := g.src.UserEntries(ctx, id.Email)
	if err != nil {
		if ctx.Err() != nil {
			// the view went away mid-fetch; nothing to decide
			return Decision{State: Pending}, false
		}
		g.log.Error(ctx, "authorization lookup failed", "email", id.Email, "error", err)
		return Decision{State: Denied, Redirect: g.opts.fallback}, true
	}

	rec, ok := access.Find(records, id.Email)
	if !ok || !access.Admits(rec) {
		g.log.Info(ctx, "admin access denied", "email", id.Email, "found", ok)
		return Decision{State: Denied, Redirect: g.opts.fallback}, true
	}

	d := Decision{State: Admitted}
	if slices.Contains(g.opts.entry, location) {
		d.Redirect = g.opts.landing
	}
	return d, true
}
