package repo

import models "github.com/Githubspruchir/InventoryStore/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error

	// AdjustStock applies delta to the product's stock quantity as a single
	// conditional update: the new quantity must stay non-negative and, when
	// the product carries a threshold, at or above it. ErrStockConflict is
	// returned when the condition does not hold at commit time.
	AdjustStock(id, delta int) (models.Product, error)

	// LowStock lists products whose stock quantity is strictly below cutoff.
	LowStock(cutoff int) ([]models.Product, error)
}
