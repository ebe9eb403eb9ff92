// Package stock holds the stock adjustment rule set: quantities never go
// negative and, when a product carries a low-stock threshold, never end a
// mutation below it.
package stock

import (
	"errors"
	"fmt"
	"time"

	models "github.com/Githubspruchir/InventoryStore/internal/models"
	repo "github.com/Githubspruchir/InventoryStore/internal/repo"
)

// LowStockCutoff is the fixed quantity used by the low-stock listing and
// the dashboard count. It is deliberately independent of each product's
// own threshold.
const LowStockCutoff = 10

// ErrorKind labels the rule a rejected stock operation violated.
type ErrorKind string

const (
	KindNegativeStock     ErrorKind = "negative_stock"
	KindBelowThreshold    ErrorKind = "below_threshold"
	KindInsufficientStock ErrorKind = "insufficient_stock"
	KindInvalidQuantity   ErrorKind = "invalid_quantity"
	KindConflict          ErrorKind = "conflict"
)

// PolicyError is returned for every invalid stock operation.
type PolicyError struct {
	Kind    ErrorKind
	Message string
}

func (e *PolicyError) Error() string { return e.Message }

func policyErrorf(kind ErrorKind, format string, args ...any) *PolicyError {
	return &PolicyError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Policy enforces the stock invariants on every product mutation before it
// reaches the repository.
type Policy struct {
	products repo.ProductRepository
}

func NewPolicy(products repo.ProductRepository) *Policy {
	return &Policy{products: products}
}

// Validate checks the stock invariants on a product snapshot.
func (s *Policy) Validate(p models.Product) error {
	if p.StockQuantity < 0 {
		return policyErrorf(KindNegativeStock, "stock cannot be negative")
	}
	if p.LowStockThreshold < 0 {
		return policyErrorf(KindInvalidQuantity, "low-stock threshold cannot be negative")
	}
	if p.LowStockThreshold > 0 && p.StockQuantity < p.LowStockThreshold {
		return policyErrorf(KindBelowThreshold,
			"stock %d is below the low-stock threshold (%d)", p.StockQuantity, p.LowStockThreshold)
	}
	return nil
}

// Create validates and persists a new product. The identifier is always
// assigned by the store; anything the client supplied is discarded.
func (s *Policy) Create(p models.Product) (models.Product, error) {
	p.ID = 0
	if err := s.Validate(p); err != nil {
		return models.Product{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.products.Create(p)
}

// Update validates the patch and overwrites all mutable fields of the
// existing product.
func (s *Policy) Update(id int, patch models.Product) (models.Product, error) {
	existing, err := s.products.GetByID(id)
	if err != nil {
		return models.Product{}, err
	}

	if err := s.Validate(patch); err != nil {
		return models.Product{}, err
	}

	existing.Name = patch.Name
	existing.Description = patch.Description
	existing.StockQuantity = patch.StockQuantity
	existing.LowStockThreshold = patch.LowStockThreshold
	existing.ImageURL = patch.ImageURL
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.products.Update(existing)
}

// Increase adds qty to a product's stock.
func (s *Policy) Increase(id, qty int) (models.Product, error) {
	if qty <= 0 {
		return models.Product{}, policyErrorf(KindInvalidQuantity, "quantity must be positive")
	}
	p, err := s.products.AdjustStock(id, qty)
	if errors.Is(err, repo.ErrStockConflict) {
		return models.Product{}, s.classifyConflict(id, qty)
	}
	return p, err
}

// Decrease removes qty from a product's stock.
func (s *Policy) Decrease(id, qty int) (models.Product, error) {
	if qty <= 0 {
		return models.Product{}, policyErrorf(KindInvalidQuantity, "quantity must be positive")
	}
	p, err := s.products.AdjustStock(id, -qty)
	if errors.Is(err, repo.ErrStockConflict) {
		return models.Product{}, s.classifyConflict(id, -qty)
	}
	return p, err
}

// classifyConflict turns a rejected conditional update into the precise
// rule violation, re-reading the product because the conditional update
// itself cannot say which clause failed.
func (s *Policy) classifyConflict(id, delta int) error {
	current, err := s.products.GetByID(id)
	if err != nil {
		return err
	}

	newQty := current.StockQuantity + delta
	if newQty < 0 {
		return policyErrorf(KindInsufficientStock, "insufficient stock available")
	}
	if current.LowStockThreshold > 0 && newQty < current.LowStockThreshold {
		return policyErrorf(KindBelowThreshold,
			"cannot adjust: would go below low-stock threshold (%d): current=%d, delta=%d, resulting=%d",
			current.LowStockThreshold, current.StockQuantity, delta, newQty)
	}
	// The snapshot moved between the update and the re-read.
	return policyErrorf(KindConflict, "stock level changed concurrently, retry")
}

// Get returns a single product.
func (s *Policy) Get(id int) (models.Product, error) {
	return s.products.GetByID(id)
}

// GetAll returns every product.
func (s *Policy) GetAll() ([]models.Product, error) {
	return s.products.GetAll()
}

// Delete removes a product.
func (s *Policy) Delete(id int) error {
	return s.products.Delete(id)
}

// LowStock lists products under the fixed cutoff.
func (s *Policy) LowStock() ([]models.Product, error) {
	return s.products.LowStock(LowStockCutoff)
}
