package repo

import (
	"sync"

	"github.com/Githubspruchir/InventoryStore/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository used by the handler tests.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findLocked(id)
}

func (r *InMemoryProductRepository) findLocked(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// AdjustStock applies delta under the repository lock so the invariant
// check and the write happen atomically, mirroring the conditional UPDATE
// of the Postgres implementation.
func (r *InMemoryProductRepository) AdjustStock(id, delta int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, err := r.findLocked(id)
	if err != nil {
		return models.Product{}, ErrStockConflict
	}

	newQty := product.StockQuantity + delta
	if newQty < 0 {
		return models.Product{}, ErrStockConflict
	}
	if product.LowStockThreshold > 0 && newQty < product.LowStockThreshold {
		return models.Product{}, ErrStockConflict
	}

	product.StockQuantity = newQty
	for i, p := range r.products {
		if p.ID == id {
			r.products[i] = product
			break
		}
	}
	return product, nil
}

// LowStock lists products with a stock quantity strictly below cutoff.
func (r *InMemoryProductRepository) LowStock(cutoff int) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Product
	for _, p := range r.products {
		if p.StockQuantity < cutoff {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}
