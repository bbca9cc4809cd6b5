package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/access"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/cart"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/client"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/guard"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/models"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memStorage) Get(_ context.Context, k string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[k], nil
}

func (m *memStorage) Set(_ context.Context, k string, v []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[k] = v
	return nil
}

type fakeAPI struct {
	pingErr   error
	products  []models.Product
	orders    []map[string]any
	created   []any
	createErr error
	updates   map[string]map[string]any
	deleted   []string
}

func (f *fakeAPI) Ping(context.Context) error { return f.pingErr }
func (f *fakeAPI) Banners(context.Context) ([]models.Banner, error) {
	return []models.Banner{{Title: "Summer", Subtitle: "sale", ButtonLink: "/shop"}}, nil
}
func (f *fakeAPI) Products(context.Context) ([]models.Product, error) { return f.products, nil }
func (f *fakeAPI) Product(_ context.Context, id string) (models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, client.ErrNotFound
}
func (f *fakeAPI) Content(_ context.Context, name string) (json.RawMessage, error) {
	return json.RawMessage(`{"name":"` + name + `"}`), nil
}
func (f *fakeAPI) CreateOrder(_ context.Context, order any) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, order)
	return "o-1", nil
}
func (f *fakeAPI) Orders(context.Context, map[string]string) ([]map[string]any, error) {
	return f.orders, nil
}
func (f *fakeAPI) UpdateOrder(_ context.Context, id string, set map[string]any) (client.UpdateResult, error) {
	if f.updates == nil {
		f.updates = map[string]map[string]any{}
	}
	f.updates[id] = set
	return client.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}
func (f *fakeAPI) DeleteOrder(_ context.Context, id string) (int64, error) {
	f.deleted = append(f.deleted, id)
	return 1, nil
}

type fakeRecords struct {
	records []access.Record
	calls   int
}

func (f *fakeRecords) UserEntries(context.Context, string) ([]access.Record, error) {
	f.calls++
	return f.records, nil
}

type fakeSession struct {
	id        *guard.Identity
	passwords map[string]string
}

func (s *fakeSession) Current() (*guard.Identity, bool) { return s.id, false }
func (s *fakeSession) Restore(context.Context)          {}
func (s *fakeSession) Login(_ context.Context, email, password string) error {
	if s.passwords[email] != password {
		return client.ErrUnauthorized
	}
	s.id = &guard.Identity{Email: email}
	return nil
}
func (s *fakeSession) Logout(context.Context) error { s.id = nil; return nil }

type harness struct {
	app     *App
	api     *fakeAPI
	records *fakeRecords
	session *fakeSession
	store   *cart.Store
	out     *bytes.Buffer
}

func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	api := &fakeAPI{
		products: []models.Product{
			{ID: "p1", Title: "Ring", Price: decimal.NewFromInt(100), Currency: "USD", MainImages: []models.Image{{URL: "/r.jpg"}}},
			{ID: "p2", Title: "Chain", Price: decimal.RequireFromString("49.50"), Currency: "USD"},
		},
		orders: []map[string]any{{"_id": "o-9", "email": "c@x.com", "status": "pending"}},
	}
	records := &fakeRecords{records: []access.Record{
		{Email: "admin@x.com", UserType: access.UserTypeAdmin, Status: access.StatusActive},
		{Email: "c@x.com", UserType: access.UserTypeCustomer, Status: access.StatusActive},
	}}
	sess := &fakeSession{passwords: map[string]string{"admin@x.com": "pw", "c@x.com": "pw"}}
	store := cart.NewStore(&memStorage{data: map[string][]byte{}}, logging.Discard())
	out := &bytes.Buffer{}

	app := NewApp(Deps{
		API:     api,
		Records: records,
		Session: sess,
		Cart:    store,
		Log:     logging.Discard(),
		In:      strings.NewReader(input),
		Out:     out,
	})

	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }
	t.Cleanup(func() { readPassword = orig })

	return &harness{app: app, api: api, records: records, session: sess, store: store, out: out}
}

func TestShopping_AddUpdateRemove(t *testing.T) {
	h := newHarness(t, strings.Join([]string{
		"products",
		"add 1 2",
		"add p2 1 gold -",
		"add 1",
		"cart",
		"qty 2 3",
		"remove 1",
		"exit",
	}, "\n"))

	h.app.repl(context.Background())

	items := h.store.Read(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
	require.NotNil(t, items[0].SelectedColor)
	assert.Equal(t, "gold", *items[0].SelectedColor)
	assert.Nil(t, items[0].SelectedSize)

	out := h.out.String()
	assert.Contains(t, out, "added Ring (cart: 2 items)")
	assert.Contains(t, out, "added Ring (cart: 4 items)")
	assert.Contains(t, out, "items: 4  subtotal: 349.50")
	assert.Contains(t, out, "bye")
}

func TestCheckout_GuestIsPromptedNotRedirected(t *testing.T) {
	h := newHarness(t, "checkout\nplace\n")

	h.app.repl(context.Background())

	out := h.out.String()
	assert.Contains(t, out, "'go /login' to sign in or 'go /cart' to go back")
	assert.NotContains(t, out, "-> ")
	assert.Equal(t, RouteCheckout, h.app.route)
	assert.Empty(t, h.api.created)
}

func TestCheckout_PlacesOrderAndEmptiesCart(t *testing.T) {
	h := newHarness(t, strings.Join([]string{
		"products",
		"add 1 2",
		"add 2 1 - L",
		"login",
		"c@x.com",
		"checkout",
		"place 12 Main St",
	}, "\n"))

	h.app.repl(context.Background())

	require.Len(t, h.api.created, 1)
	order := h.api.created[0].(models.Order)
	assert.Equal(t, "c@x.com", order.Email)
	assert.Equal(t, "12 Main St", order.Address)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "249.5", order.Subtotal.String())
	assert.Empty(t, h.store.Read(context.Background()))
	assert.Contains(t, h.out.String(), "order o-1 placed")
}

func TestCheckout_FailedOrderKeepsCart(t *testing.T) {
	h := newHarness(t, "products\nadd 1\nlogin\nc@x.com\ncheckout\nplace\n")
	h.api.createErr = errors.New("down")

	h.app.repl(context.Background())

	assert.Len(t, h.store.Read(context.Background()), 1)
	assert.Contains(t, h.out.String(), "could not place the order")
}

func TestAdmin_CustomerIsRedirectedToVerify(t *testing.T) {
	h := newHarness(t, "login\nc@x.com\nadmin\n")

	h.app.repl(context.Background())

	assert.Equal(t, RouteAdminVerify, h.app.route)
	assert.Contains(t, h.out.String(), "-> /admin-verify")
	assert.Contains(t, h.out.String(), "sign in with a staff account")
}

func TestAdmin_GuestIsRedirectedWithoutLookup(t *testing.T) {
	h := newHarness(t, "admin\n")

	h.app.repl(context.Background())

	assert.Equal(t, RouteAdminVerify, h.app.route)
	assert.Zero(t, h.records.calls)
}

func TestAdmin_ReenteringRedirectsAgain(t *testing.T) {
	cases := []struct {
		name  string
		input string
		calls int
	}{
		{name: "guest", input: "admin\ngo /\nadmin\n", calls: 0},
		{name: "customer", input: "login\nc@x.com\nadmin\ngo /\nadmin\norders\n", calls: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, tc.input)

			h.app.repl(context.Background())

			out := h.out.String()
			assert.Equal(t, RouteAdminVerify, h.app.route)
			assert.Equal(t, 2, strings.Count(out, "-> /admin-verify"))
			assert.Equal(t, tc.calls, h.records.calls)
		})
	}
}

func TestAdmin_LoginOnVerifyLandsOnAdmin(t *testing.T) {
	h := newHarness(t, strings.Join([]string{
		"admin",
		"login",
		"admin@x.com",
		"order-set o-9 status=shipped paid=true",
		"order-delete o-9",
	}, "\n"))

	h.app.repl(context.Background())

	out := h.out.String()
	assert.Equal(t, RouteAdmin, h.app.route)
	assert.Contains(t, out, "-> /admin\n")
	assert.Contains(t, out, "o-9  c@x.com  pending")
	assert.Equal(t, map[string]any{"status": "shipped", "paid": true}, h.api.updates["o-9"])
	assert.Equal(t, []string{"o-9"}, h.api.deleted)
	assert.Contains(t, out, "matched 1, modified 1 (paid, status)")
}

func TestAdmin_CommandsRequireAdmin(t *testing.T) {
	h := newHarness(t, "login\nc@x.com\norder-delete o-9\n")

	h.app.repl(context.Background())

	assert.Empty(t, h.api.deleted)
	assert.Equal(t, RouteAdminVerify, h.app.route)
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newHarness(t, "login\nnobody@x.com\nwhoami\n")

	h.app.repl(context.Background())

	assert.Contains(t, h.out.String(), "wrong email or password")
	assert.Contains(t, h.out.String(), "not signed in")
}

func TestMisc_UnknownAndContent(t *testing.T) {
	h := newHarness(t, "frobnicate\ncontent blogs\ncontent nope\ngo /nowhere\nback\nhelp\n")

	h.app.repl(context.Background())

	out := h.out.String()
	assert.Contains(t, out, "unknown command: frobnicate")
	assert.Contains(t, out, `{"name":"blogs"}`)
	assert.Contains(t, out, "unknown content: nope")
	assert.Contains(t, out, "no such page: /nowhere")
	assert.Contains(t, out, "commands:")
	assert.Equal(t, RouteHome, h.app.route)
}

func TestRun_WarnsWhenServerUnreachable(t *testing.T) {
	h := newHarness(t, "")
	h.api.pingErr = client.ErrUnavailable

	require.NoError(t, h.app.Run(context.Background()))

	assert.Contains(t, h.out.String(), "the store server is unreachable")
	assert.Contains(t, h.out.String(), "[ Summer ]")
}

func TestRun_ReachableServerIsQuiet(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.app.Run(context.Background()))

	assert.NotContains(t, h.out.String(), "unreachable")
}
