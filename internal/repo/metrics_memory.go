package repo

type InMemoryMetricsRepository struct {
	productRepo  ProductRepository
	movementRepo MovementRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	productRepo ProductRepository,
	movementRepo MovementRepository,
) {
	i.productRepo = productRepo
	i.movementRepo = movementRepo
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics(lowStockCutoff int) (Metrics, error) {
	m := Metrics{}

	products, err := i.productRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)

	for _, product := range products {
		movements, err := i.movementRepo.GetByProductID(product.ID)
		if err != nil {
			return m, err
		}
		m.TotalMovements += len(movements)
		if len(movements) > m.MostMovedProduct.MovementCount {
			m.MostMovedProduct.Name = product.Name
			m.MostMovedProduct.MovementCount = len(movements)
		}
	}

	for _, product := range products {
		if product.StockQuantity < lowStockCutoff {
			m.LowStockCount++
		}
	}

	return m, nil
}
