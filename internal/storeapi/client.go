package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storeadmin/internal/models"
)

// ErrNotFound is returned when the upstream API has no record for the
// requested id. The upstream answers such lookups with an empty or null
// body rather than a 404, so both cases map here.
var ErrNotFound = errors.New("record not found")

// API is the surface the state store consumes. Client implements it; tests
// substitute a mock.
type API interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int, user models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error

	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int, product models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

// Client is a typed JSON client for the upstream store API. It performs no
// retries and adds no timeout beyond the injected http.Client's: failures
// are surfaced immediately to the caller.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

// NewClient creates a Client against the given base URL. A nil httpc uses
// a client with a 30 second timeout.
func NewClient(baseURL string, httpc *http.Client, log *zap.Logger) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{baseURL: baseURL, httpc: httpc, log: log}
}

// do issues one request and decodes the JSON response body into out when
// out is non-nil. A null or empty 2xx body yields ErrNotFound, matching
// the upstream's behavior for lookups of unknown ids.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request to store API failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("store API returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("store API responded with status %d for %s %s", resp.StatusCode, method, path)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrNotFound
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// --- Users ---

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/users", user, &created); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, user models.User) (*models.User, error) {
	var updated models.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), user, &updated); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	// The upstream echoes the deleted record; the body is not needed.
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

// --- Products ---

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/products", product, &created); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, product models.Product) (*models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), product, &updated); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}
