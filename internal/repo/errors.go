package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product id matches no row.
	ErrProductNotFound = errors.New("product not found")

	// ErrUserNotFound is returned when a username matches no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when creating a user whose username
	// is already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrStockConflict is returned when a conditional stock adjustment
	// matched no row: the product vanished or the adjustment would leave
	// the quantity negative or under the product's low-stock threshold.
	ErrStockConflict = errors.New("stock adjustment rejected")
)
