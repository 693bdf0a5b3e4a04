package inventory

import (
	"sync"

	"estoque-api/internal/auth"
	"estoque-api/internal/models"
	"estoque-api/internal/repo"
	"estoque-api/internal/stats"
)

// ListController owns the canonical in-memory product collection for one
// session. All reads come from this collection; every mutation goes through
// the store and is followed by a full re-fetch. On any store failure the
// previous collection is left untouched.
type ListController struct {
	store   repo.ProductRepository
	session auth.Session

	mu       sync.Mutex
	products []models.Product
	loading  bool
}

func NewListController(store repo.ProductRepository, session auth.Session) *ListController {
	return &ListController{store: store, session: session}
}

// Refresh replaces the collection with a fresh owner-scoped read from the
// store. This is the invalidate-and-reload contract every mutation path
// calls: local state is never trusted over the source of truth.
func (c *ListController) Refresh() error {
	if !c.session.Valid() {
		return auth.ErrUnauthenticated
	}

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	products, err := c.store.ListByOwner(c.session.UserID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		return err
	}
	c.products = products
	return nil
}

// Products returns a copy of the current collection, newest first.
func (c *ListController) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Loading reports whether a refresh is in flight. It only gates redundant
// user-initiated refreshes; it is not a correctness mechanism.
func (c *ListController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Summary recomputes the aggregate figures from the current collection.
func (c *ListController) Summary() stats.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return stats.Aggregate(c.products)
}

// RequestCreate opens a form with an empty draft and no edit target.
func (c *ListController) RequestCreate() *FormController {
	return NewFormController(c.store, c.session)
}

// RequestEdit opens a form seeded with the product's current field values
// as the active edit target. Pure state transition, no I/O.
func (c *ListController) RequestEdit(product models.Product) *FormController {
	f := NewFormController(c.store, c.session)
	f.Initialize(&product)
	return f
}

// RequestDelete removes the product by id and reloads the collection.
// A failed delete surfaces the error and leaves the collection unchanged;
// a stale read is possible until the next refresh.
func (c *ListController) RequestDelete(id string) error {
	if !c.session.Valid() {
		return auth.ErrUnauthenticated
	}
	if err := c.store.Delete(id, c.session.UserID); err != nil {
		return err
	}
	return c.Refresh()
}
