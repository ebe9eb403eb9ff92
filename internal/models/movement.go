package models

// Movement records a single stock adjustment applied to a product.
// Delta is positive for increases and negative for decreases.
type Movement struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}
