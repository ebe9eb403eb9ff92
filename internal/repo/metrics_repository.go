package repo

type MostMovedProduct struct {
	Name          string `json:"name"`
	MovementCount int    `json:"movement_count"`
}

type Metrics struct {
	TotalProducts    int              `json:"total_products"`
	TotalMovements   int              `json:"total_movements"`
	LowStockCount    int              `json:"low_stock_count"`
	MostMovedProduct MostMovedProduct `json:"most_moved_product"`
}

type MetricsRepository interface {
	// GetDashboardMetrics aggregates counts for the admin dashboard.
	// lowStockCutoff is the quantity below which a product counts as low on stock.
	GetDashboardMetrics(lowStockCutoff int) (Metrics, error)
}
