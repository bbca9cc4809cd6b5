package session

import (
	"context"
	"errors"
	"testing"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/client"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	data   map[string][]byte
	getErr error
}

func (m *memStore) Get(_ context.Context, k string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.data[k], nil
}
func (m *memStore) Set(_ context.Context, k string, v []byte) error { m.data[k] = v; return nil }
func (m *memStore) Delete(_ context.Context, k string) error        { delete(m.data, k); return nil }

type fakeAPI struct {
	token    string
	meEmail  string
	meErr    error
	loginErr error
}

func (f *fakeAPI) SetToken(t string) { f.token = t }
func (f *fakeAPI) Login(_ context.Context, email, _ string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	f.token = "tok-" + email
	return f.token, nil
}
func (f *fakeAPI) Me(context.Context) (string, error) { return f.meEmail, f.meErr }

func TestProvider_StartsLoading(t *testing.T) {
	p := NewProvider(&memStore{data: map[string][]byte{}}, &fakeAPI{}, logging.Discard())
	id, loading := p.Current()
	assert.Nil(t, id)
	assert.True(t, loading)
}

func TestRestore_NoToken(t *testing.T) {
	p := NewProvider(&memStore{data: map[string][]byte{}}, &fakeAPI{}, logging.Discard())
	p.Restore(context.Background())

	id, loading := p.Current()
	assert.Nil(t, id)
	assert.False(t, loading)
}

func TestRestore_ValidToken(t *testing.T) {
	api := &fakeAPI{meEmail: "a@x.com"}
	p := NewProvider(&memStore{data: map[string][]byte{"access_token": []byte("tok")}}, api, logging.Discard())
	p.Restore(context.Background())

	id, loading := p.Current()
	require.NotNil(t, id)
	assert.Equal(t, "a@x.com", id.Email)
	assert.False(t, loading)
	assert.Equal(t, "tok", api.token)
}

func TestRestore_ExpiredTokenIsDropped(t *testing.T) {
	store := &memStore{data: map[string][]byte{"access_token": []byte("old")}}
	api := &fakeAPI{meErr: client.ErrUnauthorized}
	p := NewProvider(store, api, logging.Discard())
	p.Restore(context.Background())

	id, _ := p.Current()
	assert.Nil(t, id)
	assert.NotContains(t, store.data, "access_token")
	assert.Empty(t, api.token)
}

func TestRestore_ServerDownKeepsToken(t *testing.T) {
	store := &memStore{data: map[string][]byte{"access_token": []byte("tok")}}
	p := NewProvider(store, &fakeAPI{meErr: client.ErrUnavailable}, logging.Discard())
	p.Restore(context.Background())

	id, loading := p.Current()
	assert.Nil(t, id)
	assert.False(t, loading)
	assert.Contains(t, store.data, "access_token")
}

func TestRestore_StorageError(t *testing.T) {
	p := NewProvider(&memStore{getErr: errors.New("io")}, &fakeAPI{}, logging.Discard())
	p.Restore(context.Background())
	id, loading := p.Current()
	assert.Nil(t, id)
	assert.False(t, loading)
}

func TestLoginLogout(t *testing.T) {
	store := &memStore{data: map[string][]byte{}}
	api := &fakeAPI{}
	p := NewProvider(store, api, logging.Discard())
	ctx := context.Background()

	require.NoError(t, p.Login(ctx, "a@x.com", "pw"))
	id, loading := p.Current()
	require.NotNil(t, id)
	assert.Equal(t, "a@x.com", id.Email)
	assert.False(t, loading)
	assert.Equal(t, []byte("tok-a@x.com"), store.data["access_token"])

	require.NoError(t, p.Logout(ctx))
	id, _ = p.Current()
	assert.Nil(t, id)
	assert.Empty(t, api.token)
	assert.NotContains(t, store.data, "access_token")
}

func TestLogin_Failure(t *testing.T) {
	p := NewProvider(&memStore{data: map[string][]byte{}}, &fakeAPI{loginErr: client.ErrUnauthorized}, logging.Discard())
	err := p.Login(context.Background(), "a@x.com", "bad")
	require.ErrorIs(t, err, client.ErrUnauthorized)
	id, _ := p.Current()
	assert.Nil(t, id)
}
