package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Githubspruchir/InventoryStore/internal/auth"
	api "github.com/Githubspruchir/InventoryStore/internal/http"
	handler "github.com/Githubspruchir/InventoryStore/internal/http/handlers"
	rl "github.com/Githubspruchir/InventoryStore/internal/http/rate_limiter"
	"github.com/Githubspruchir/InventoryStore/internal/models"
	"github.com/Githubspruchir/InventoryStore/internal/repo"
	"github.com/Githubspruchir/InventoryStore/internal/stock"
	"github.com/Githubspruchir/InventoryStore/internal/storage"
)

var (
	token        string
	productRepo  *repo.InMemoryProductRepository
	movementRepo *repo.InMemoryMovementRepository
	userRepo     *repo.InMemoryUserRepository
)

func init() {
	auth.Configure("test-secret", 15*time.Minute)
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetStockPolicy(stock.NewPolicy(productRepo))

	movementRepo = repo.NewInMemoryMovementRepository()
	handler.SetMovementRepo(movementRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)
	handler.SetBcryptCost(bcrypt.MinCost)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	})

	metricsRepo := repo.NewInMemoryMetricsRepository()
	handler.SetMetricsRepo(metricsRepo)
	metricsRepo.SetRepositories(productRepo, movementRepo)

	dir, err := os.MkdirTemp("", "images")
	if err != nil {
		panic(err)
	}
	images, err := storage.NewImageStore(dir)
	if err != nil {
		panic(err)
	}
	handler.SetImageStore(images)
}

func clearAll() {
	productRepo.Clear()
	movementRepo.Clear()
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/products", p)
}

func decodeProduct(w *httptest.ResponseRecorder) (models.Product, error) {
	var p models.Product
	err := json.NewDecoder(w.Body).Decode(&p)
	return p, err
}

func multipartProduct(p handler.ProductRequest, imageName string, imageContent []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	productJSON, _ := json.Marshal(p)
	_ = writer.WriteField("product", string(productJSON))

	part, _ := writer.CreateFormFile("image", imageName)
	part.Write(imageContent)

	writer.Close()
	return &buf, writer.FormDataContentType()
}
