package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	models "github.com/Githubspruchir/InventoryStore/internal/models"
)

func productFromRequest(req ProductRequest) models.Product {
	return models.Product{
		Name:              req.Name,
		Description:       req.Description,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		ImageURL:          req.ImageURL,
	}
}

func productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return 0, false
	}
	return id, true
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorBody
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if errs := validateProduct(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	created, err := stockPolicy.Create(productFromRequest(req))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	productCache.Invalidate()

	_ = writeJSON(w, http.StatusOK, created)
}

// CreateProductWithImageHandler godoc
// @Summary Create a product with an attached image
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param product formData string true "Product JSON"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorBody
// @Failure 500 {object} ErrorBody
// @Router /api/products/with-image [post]
func CreateProductWithImageHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var req ProductRequest
	if err := json.Unmarshal([]byte(r.FormValue("product")), &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid product part")
		return
	}
	if errs := validateProduct(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image part is required")
		return
	}
	defer file.Close()

	imageURL, err := imageStore.Save(header.Filename, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	product := productFromRequest(req)
	product.ImageURL = imageURL

	created, err := stockPolicy.Create(product)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	productCache.Invalidate()

	_ = writeJSON(w, http.StatusOK, created)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := stockPolicy.Get(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, product)
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	if products, ok := productCache.GetList(); ok {
		_ = writeJSON(w, http.StatusOK, products)
		return
	}

	products, err := stockPolicy.GetAll()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	productCache.SetList(products)

	_ = writeJSON(w, http.StatusOK, products)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /api/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if errs := validateProduct(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	updated, err := stockPolicy.Update(id, productFromRequest(req))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	productCache.Invalidate()

	_ = writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /api/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if err := stockPolicy.Delete(id); err != nil {
		writeDomainError(w, err)
		return
	}
	productCache.Invalidate()

	w.WriteHeader(http.StatusNoContent)
}

// LowStockProductsHandler godoc
// @Summary List products under the fixed low-stock cutoff
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Router /api/products/low-stock [get]
func LowStockProductsHandler(w http.ResponseWriter, r *http.Request) {
	if products, ok := productCache.GetLowStock(); ok {
		_ = writeJSON(w, http.StatusOK, products)
		return
	}

	products, err := stockPolicy.LowStock()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	productCache.SetLowStock(products)

	_ = writeJSON(w, http.StatusOK, products)
}
