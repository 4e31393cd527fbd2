package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"storeadmin/internal/events"
	"storeadmin/internal/models"
	"storeadmin/internal/storeapi"
)

// DefaultNotificationTTL is how long a notification stays visible before
// it is removed automatically.
const DefaultNotificationTTL = 5 * time.Second

// Store is the single source of truth for the fetched collections and the
// global loading/error/notification state. All mutation goes through its
// action methods; readers get copies, never the backing slices.
//
// Every state transition is atomic under one mutex. Actions themselves are
// not serialized against each other: two concurrent actions may land their
// collection updates in either order, as in the source this mirrors, but
// no update can be lost or half-applied. The loading flag is a counter of
// in-flight actions rather than a boolean, so overlapping actions can no
// longer clear it prematurely.
type Store struct {
	api  storeapi.API
	log  *zap.Logger
	sink events.Sink

	notifyTTL time.Duration

	mu            sync.Mutex
	users         []models.User
	products      []models.Product
	pending       int
	lastErr       string
	notifications []models.Notification
	currentUser   *models.User

	lastNotifyID int64
	timers       map[int64]*time.Timer
}

// Option configures a Store.
type Option func(*Store)

// WithNotificationTTL overrides the notification expiry window. Mainly for
// tests.
func WithNotificationTTL(ttl time.Duration) Option {
	return func(s *Store) { s.notifyTTL = ttl }
}

// New creates a Store. A nil sink discards activity events.
func New(api storeapi.API, log *zap.Logger, sink events.Sink, opts ...Option) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	if sink == nil {
		sink = events.Discard{}
	}
	s := &Store{
		api:       api,
		log:       log,
		sink:      sink,
		notifyTTL: DefaultNotificationTTL,
		timers:    make(map[int64]*time.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close stops all pending notification timers.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *Store) begin() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *Store) finish() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}

// fail records the raw error, emits the user-facing notification and logs.
func (s *Store) fail(message string, err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
	s.log.Error(message, zap.Error(err))
	s.Notify(message, models.NotifyError)
}

// Initialize fetches the full user and product lists once, users first.
// A failure anywhere aborts the remaining steps.
func (s *Store) Initialize(ctx context.Context) error {
	s.begin()
	defer s.finish()

	users, err := s.api.ListUsers(ctx)
	if err != nil {
		s.fail("Failed to load users", err)
		return err
	}
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()

	products, err := s.api.ListProducts(ctx)
	if err != nil {
		s.fail("Failed to load products", err)
		return err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()

	s.log.Info("initial data loaded",
		zap.Int("users", len(users)),
		zap.Int("products", len(products)),
	)
	return nil
}

// --- Read access ---

// Users returns a copy of the user collection in fetch/insertion order.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Products returns a copy of the product collection in fetch/insertion order.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Loading reports whether any action is currently in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending > 0
}

// Err returns the message of the last failed action, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// CurrentUser returns the signed-in user reference, if any was set.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// SetCurrentUser records the active user reference.
func (s *Store) SetCurrentUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = u
}

// --- User actions ---

// AddUser submits a create payload and appends the server-returned record
// on success. On failure the collection is untouched and the error is
// returned so the caller can keep its own submitting state in sync.
func (s *Store) AddUser(ctx context.Context, user models.User) (*models.User, error) {
	s.begin()
	defer s.finish()

	created, err := s.api.CreateUser(ctx, user)
	if err != nil {
		s.fail("Failed to add user", err)
		return nil, err
	}

	s.mu.Lock()
	s.users = append(s.users, *created)
	s.mu.Unlock()

	s.Notify("User added successfully!", models.NotifySuccess)
	s.sink.Record(models.Activity{
		Type:      "user_added",
		Message:   fmt.Sprintf("User %s added", created.Username),
		Resource:  "users",
		EntityID:  created.ID,
		Timestamp: time.Now(),
	})
	return created, nil
}

// UpdateUser submits a full-record replace. The entry whose id matches the
// server echo is replaced in place; if no entry matches, the collection is
// left as is.
func (s *Store) UpdateUser(ctx context.Context, id int, user models.User) (*models.User, error) {
	s.begin()
	defer s.finish()

	updated, err := s.api.UpdateUser(ctx, id, user)
	if err != nil {
		s.fail("Failed to update user", err)
		return nil, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.users {
		if s.users[i].ID == updated.ID {
			s.users[i] = *updated
			replaced = true
			break
		}
	}
	s.mu.Unlock()
	if !replaced {
		s.log.Warn("updated user not present in collection", zap.Int("id", updated.ID))
	}

	s.Notify("User updated successfully!", models.NotifySuccess)
	s.sink.Record(models.Activity{
		Type:      "user_updated",
		Message:   fmt.Sprintf("User %s updated", updated.Username),
		Resource:  "users",
		EntityID:  updated.ID,
		Timestamp: time.Now(),
	})
	return updated, nil
}

// DeleteUser removes the matching entry. Deleting an id that is not in the
// collection leaves it unchanged.
func (s *Store) DeleteUser(ctx context.Context, id int) error {
	s.begin()
	defer s.finish()

	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.fail("Failed to delete user", err)
		return err
	}

	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.Notify("User deleted successfully!", models.NotifySuccess)
	s.sink.Record(models.Activity{
		Type:      "user_deleted",
		Message:   fmt.Sprintf("User %d deleted", id),
		Resource:  "users",
		EntityID:  id,
		Timestamp: time.Now(),
	})
	return nil
}

// --- Product actions ---

// AddProduct submits a create payload and appends the server-returned
// record on success. Same failure contract as AddUser.
func (s *Store) AddProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	s.begin()
	defer s.finish()

	created, err := s.api.CreateProduct(ctx, product)
	if err != nil {
		s.fail("Failed to add product", err)
		return nil, err
	}

	s.mu.Lock()
	s.products = append(s.products, *created)
	s.mu.Unlock()

	s.Notify("Product added successfully!", models.NotifySuccess)
	s.sink.Record(models.Activity{
		Type:      "product_added",
		Message:   fmt.Sprintf("Product %q added", created.Title),
		Resource:  "products",
		EntityID:  created.ID,
		Timestamp: time.Now(),
	})
	return created, nil
}

// UpdateProduct submits a full-record replace, matching by the echoed id.
func (s *Store) UpdateProduct(ctx context.Context, id int, product models.Product) (*models.Product, error) {
	s.begin()
	defer s.finish()

	updated, err := s.api.UpdateProduct(ctx, id, product)
	if err != nil {
		s.fail("Failed to update product", err)
		return nil, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.products {
		if s.products[i].ID == updated.ID {
			s.products[i] = *updated
			replaced = true
			break
		}
	}
	s.mu.Unlock()
	if !replaced {
		s.log.Warn("updated product not present in collection", zap.Int("id", updated.ID))
	}

	s.Notify("Product updated successfully!", models.NotifySuccess)
	s.sink.Record(models.Activity{
		Type:      "product_updated",
		Message:   fmt.Sprintf("Product %q updated", updated.Title),
		Resource:  "products",
		EntityID:  updated.ID,
		Timestamp: time.Now(),
	})
	return updated, nil
}

// DeleteProduct removes the matching entry, a no-op when the id is absent.
func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	s.begin()
	defer s.finish()

	if err := s.api.DeleteProduct(ctx, id); err != nil {
		s.fail("Failed to delete product", err)
		return err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.Notify("Product deleted successfully!", models.NotifySuccess)
	s.sink.Record(models.Activity{
		Type:      "product_deleted",
		Message:   fmt.Sprintf("Product %d deleted", id),
		Resource:  "products",
		EntityID:  id,
		Timestamp: time.Now(),
	})
	return nil
}
