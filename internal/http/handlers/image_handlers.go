package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetImageHandler godoc
// @Summary Serve a stored product image
// @Tags products
// @Produce octet-stream
// @Param filename path string true "Image filename"
// @Success 200 {file} file
// @Failure 404 {object} ErrorBody
// @Router /api/products/images/{filename} [get]
func GetImageHandler(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	path, err := imageStore.Resolve(filename)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	http.ServeFile(w, r, path)
}
