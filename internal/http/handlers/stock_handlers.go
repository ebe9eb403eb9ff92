package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Githubspruchir/InventoryStore/internal/alert"
	models "github.com/Githubspruchir/InventoryStore/internal/models"
	"github.com/Githubspruchir/InventoryStore/internal/stock"
)

func adjustmentQty(w http.ResponseWriter, r *http.Request) (int, bool) {
	qty, err := strconv.Atoi(r.URL.Query().Get("qty"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "qty query parameter must be an integer")
		return 0, false
	}
	return qty, true
}

// IncreaseStockHandler godoc
// @Summary Increase a product's stock quantity
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param qty query int true "Quantity to add"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /api/products/{id}/increase [post]
func IncreaseStockHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	qty, ok := adjustmentQty(w, r)
	if !ok {
		return
	}

	product, err := stockPolicy.Increase(id, qty)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	afterAdjustment(product, qty)

	_ = writeJSON(w, http.StatusOK, product)
}

// DecreaseStockHandler godoc
// @Summary Decrease a product's stock quantity
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param qty query int true "Quantity to remove"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /api/products/{id}/decrease [post]
func DecreaseStockHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	qty, ok := adjustmentQty(w, r)
	if !ok {
		return
	}

	product, err := stockPolicy.Decrease(id, qty)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	afterAdjustment(product, -qty)

	_ = writeJSON(w, http.StatusOK, product)
}

// afterAdjustment records the movement, drops the cached listings and
// raises a low-stock alert when the product ended up under the cutoff.
func afterAdjustment(product models.Product, delta int) {
	_ = movementRepo.Log(product.ID, delta)
	productCache.Invalidate()

	if product.StockQuantity < stock.LowStockCutoff {
		log.Printf("ALERT: product %d (%s) is low on stock: qty=%d",
			product.ID, product.Name, product.StockQuantity)

		event := alert.LowStockEvent{
			ProductID:     product.ID,
			Name:          product.Name,
			StockQuantity: product.StockQuantity,
			Cutoff:        stock.LowStockCutoff,
			OccurredAt:    time.Now().UTC().Format(time.RFC3339),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = alerts.PublishLowStock(ctx, event)
		}()
	}
}

// GetMovementsHandler godoc
// @Summary Get a product's stock movement log
// @Tags inventory
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} MovementResponse
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /api/products/{id}/movements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if _, err := stockPolicy.Get(id); err != nil {
		writeDomainError(w, err)
		return
	}

	movements, err := movementRepo.GetByProductID(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]MovementResponse, len(movements))
	for i, m := range movements {
		response[i] = MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Delta:     m.Delta,
			CreatedAt: m.CreatedAt,
		}
	}
	_ = writeJSON(w, http.StatusOK, response)
}
