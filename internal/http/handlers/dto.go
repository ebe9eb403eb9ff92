package handlers

// ProductRequest is the product body accepted by create and update. A
// client-supplied id is ignored; identifiers are always server-assigned.
type ProductRequest struct {
	Id                int    `json:"id,omitempty"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	StockQuantity     int    `json:"stockQuantity"`
	LowStockThreshold int    `json:"lowStockThreshold"`
	ImageURL          string `json:"imageUrl,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type SignupResult struct {
	Message string `json:"message"`
}

type MovementResponse struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}
