package handlers

import (
	"strings"
)

// validateProduct checks the request shape. The stock invariants themselves
// live in the policy engine; this only rejects bodies that are malformed
// regardless of stock state.
func validateProduct(p ProductRequest) []string {
	var errs []string
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "name is required")
	}
	if p.StockQuantity < 0 {
		errs = append(errs, "stockQuantity cannot be negative")
	}
	if p.LowStockThreshold < 0 {
		errs = append(errs, "lowStockThreshold cannot be negative")
	}
	return errs
}
