package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/access"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/models"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/common"
)

// HTTPClient is the storefront API client. It is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken sets the bearer token attached to later requests; "" clears it.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// UpdateResult mirrors the counters returned by PUT /api/orders.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

// Login exchanges credentials for an access token and keeps it.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &resp); err != nil {
		return "", err
	}
	c.SetToken(resp.AccessToken)
	return resp.AccessToken, nil
}

// Me resolves the current token to the signed-in email.
func (c *HTTPClient) Me(ctx context.Context) (string, error) {
	var resp struct {
		Email string `json:"email"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Email, nil
}

// UserEntries lists authorization records, narrowed server-side to email
// when it is not empty.
func (c *HTTPClient) UserEntries(ctx context.Context, email string) ([]access.Record, error) {
	q := url.Values{}
	if email != "" {
		q.Set("email", email)
	}
	var out []access.Record
	if err := c.do(ctx, http.MethodGet, "/api/userEntries", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Banners(ctx context.Context) ([]models.Banner, error) {
	var out []models.Banner
	if err := c.do(ctx, http.MethodGet, "/api/ads-banner", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Product(ctx context.Context, id string) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

// Content fetches one of the presentation collections (categories, blogs,
// site-info) as raw JSON.
func (c *HTTPClient) Content(ctx context.Context, name string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/"+name, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, order any) (string, error) {
	var resp struct {
		InsertedID string `json:"insertedId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, order, &resp); err != nil {
		return "", err
	}
	return resp.InsertedID, nil
}

// Orders lists orders whose top-level fields equal every filter value.
func (c *HTTPClient) Orders(ctx context.Context, filter map[string]string) ([]map[string]any, error) {
	q := url.Values{}
	for k, v := range filter {
		q.Set(k, v)
	}
	var out []map[string]any
	if err := c.do(ctx, http.MethodGet, "/api/orders", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateOrder(ctx context.Context, id string, set map[string]any) (UpdateResult, error) {
	var out UpdateResult
	err := c.do(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id), nil, set, &out)
	return out, err
}

func (c *HTTPClient) DeleteOrder(ctx context.Context, id string) (int64, error) {
	var out struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	err := c.do(ctx, http.MethodDelete, "/api/orders/"+url.PathEscape(id), nil, nil, &out)
	return out.DeletedCount, err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var env struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&env)

	apiErr := &APIError{Status: resp.StatusCode, Type: env.Error.Type, Message: env.Error.Message}
	if apiErr.Type == "" {
		apiErr.Type = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		sentinel = ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		sentinel = ErrNotFound
	case resp.StatusCode >= 500:
		sentinel = ErrUnavailable
	default:
		sentinel = ErrBadRequest
	}
	return errors.Join(sentinel, apiErr)
}
