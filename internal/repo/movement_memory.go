package repo

import (
	"sync"
	"time"

	"github.com/Githubspruchir/InventoryStore/internal/models"
)

type InMemoryMovementRepository struct {
	mu        sync.Mutex
	movements []models.Movement
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
	}
}

// Log inserts a new stock movement.
func (r *InMemoryMovementRepository) Log(productID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movement := models.Movement{
		ID:        len(r.movements) + 1,
		ProductID: productID,
		Delta:     delta,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	r.movements = append(r.movements, movement)
	return nil
}

// GetByProductID returns all movements for a specific product, newest first.
func (r *InMemoryMovementRepository) GetByProductID(productID int) ([]models.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].ProductID == productID {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}

func (r *InMemoryMovementRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = []models.Movement{}
}
