package models

// Product represents a product entity in the inventory system.
// StockQuantity is never negative; when LowStockThreshold is greater than
// zero, StockQuantity never sits below it after a successful mutation.
type Product struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	StockQuantity     int    `json:"stockQuantity"`
	LowStockThreshold int    `json:"lowStockThreshold"`
	ImageURL          string `json:"imageUrl,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}
