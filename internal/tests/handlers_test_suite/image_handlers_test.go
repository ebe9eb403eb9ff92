package handlers_test_suite

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/Githubspruchir/InventoryStore/internal/http"
	handler "github.com/Githubspruchir/InventoryStore/internal/http/handlers"
	"github.com/Githubspruchir/InventoryStore/internal/storage"
)

func TestCreateProductWithImageHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	imageContent := []byte("fake-png-bytes")
	body, contentType := multipartProduct(
		handler.ProductRequest{Name: "Camera", StockQuantity: 2},
		"camera.png", imageContent)

	req := httptest.NewRequest(http.MethodPost, "/api/products/with-image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	created, err := decodeProduct(w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if created.Name != "Camera" {
		t.Errorf("expected name 'Camera', got %v", created.Name)
	}
	if !strings.HasPrefix(created.ImageURL, storage.URLPrefix) {
		t.Fatalf("expected image url under %q, got %q", storage.URLPrefix, created.ImageURL)
	}
	if !strings.HasSuffix(created.ImageURL, "_camera.png") {
		t.Errorf("expected stored name to keep the original filename, got %q", created.ImageURL)
	}

	// The stored image must be served back byte for byte.
	getReq := httptest.NewRequest(http.MethodGet, created.ImageURL, nil)
	getW := httptest.NewRecorder()
	r.ServeHTTP(getW, getReq)

	if getW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK serving the image, got %d", getW.Code)
	}
	if !bytes.Equal(getW.Body.Bytes(), imageContent) {
		t.Error("served image does not match the uploaded content")
	}
}

func TestCreateProductWithImageHandler_MissingImage(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("product", `{"name":"Tripod","stockQuantity":1}`)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/products/with-image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request without an image part, got %d", w.Code)
	}
}

func TestGetImageHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/products/images/does-not-exist.png", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
