package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"estoque-api/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository,
// used by the handler test suites and local runs without a database.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product
	failNext error
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

// ListByOwner retrieves the owner's products, newest first, id as tie-break.
func (r *InMemoryProductRepository) ListByOwner(ownerID int) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return nil, err
	}

	var owned []models.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.After(owned[j].CreatedAt)
		}
		return owned[i].ID < owned[j].ID
	})
	return owned, nil
}

// Create adds a new product, assigning id and creation time.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return models.Product{}, err
	}

	product.ID = uuid.NewString()
	product.CreatedAt = time.Now().UTC()
	r.products = append(r.products, product)
	return product, nil
}

// Update replaces the editable fields of an existing product.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return models.Product{}, err
	}

	for i, p := range r.products {
		if p.ID == product.ID && p.OwnerID == product.OwnerID {
			product.CreatedAt = p.CreatedAt
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product by id, scoped to owner.
func (r *InMemoryProductRepository) Delete(id string, ownerID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return err
	}

	for i, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Clear drops all products. Test helper.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}

// FailNext makes the next repository call return err. Test helper for
// exercising store-failure paths.
func (r *InMemoryProductRepository) FailNext(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failNext = err
}

func (r *InMemoryProductRepository) takeFailure() error {
	err := r.failNext
	r.failNext = nil
	return err
}
