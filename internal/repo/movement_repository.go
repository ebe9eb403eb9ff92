package repo

import (
	"github.com/Githubspruchir/InventoryStore/internal/models"
)

type MovementRepository interface {
	Log(productID, delta int) error
	GetByProductID(productID int) ([]models.Movement, error)
}
