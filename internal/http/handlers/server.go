package handlers

import (
	"github.com/Githubspruchir/InventoryStore/internal/alert"
	"github.com/Githubspruchir/InventoryStore/internal/cache"
	repo "github.com/Githubspruchir/InventoryStore/internal/repo"
	"github.com/Githubspruchir/InventoryStore/internal/stock"
	"github.com/Githubspruchir/InventoryStore/internal/storage"
)

var (
	stockPolicy  *stock.Policy
	userRepo     repo.UserRepository
	movementRepo repo.MovementRepository
	metricsRepo  repo.MetricsRepository
	imageStore   *storage.ImageStore

	productCache *cache.ProductCache
	alerts       *alert.Publisher

	bcryptCost int
)

func SetStockPolicy(p *stock.Policy) {
	stockPolicy = p
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetImageStore(s *storage.ImageStore) {
	imageStore = s
}

// SetProductCache installs the optional Redis listing cache. Passing nil
// disables caching.
func SetProductCache(c *cache.ProductCache) {
	productCache = c
}

// SetAlertPublisher installs the optional low-stock event publisher.
// Passing nil disables alerts.
func SetAlertPublisher(p *alert.Publisher) {
	alerts = p
}

func SetBcryptCost(cost int) {
	bcryptCost = cost
}
