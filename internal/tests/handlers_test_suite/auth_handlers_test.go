package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	api "github.com/Githubspruchir/InventoryStore/internal/http"
	handler "github.com/Githubspruchir/InventoryStore/internal/http/handlers"
)

func postJSON(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := postJSON(r, "/api/auth/signup", handler.CredentialsRequest{Username: "carol", Password: "pw123"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.SignupResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "User registered successfully" {
		t.Errorf("unexpected signup message: %q", resp.Message)
	}
}

func TestSignupHandler_DuplicateUsername(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	if w := postJSON(r, "/api/auth/signup", handler.CredentialsRequest{Username: "dave", Password: "pw123"}); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for first signup, got %d", w.Code)
	}

	w := postJSON(r, "/api/auth/signup", handler.CredentialsRequest{Username: "dave", Password: "other"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request for duplicate username, got %d", w.Code)
	}

	var resp handler.ErrorBody
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Error != "Bad Request" {
		t.Errorf(`expected error "Bad Request", got %q`, resp.Error)
	}
}

func TestSignupHandler_MissingFields(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name  string
		creds handler.CredentialsRequest
	}{
		{"missing username", handler.CredentialsRequest{Password: "pw123"}},
		{"missing password", handler.CredentialsRequest{Username: "erin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/auth/signup", tt.creds)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	// The test suite seeds an "admin" user at startup.
	w := postJSON(r, "/api/auth/login", handler.CredentialsRequest{Username: "admin", Password: "secret"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token in the login response")
	}

	// The issued token must be accepted by a protected endpoint.
	body := `{"name":"Charger","stockQuantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	createW := httptest.NewRecorder()
	r.ServeHTTP(createW, req)

	if createW.Code != http.StatusOK {
		t.Errorf("expected the issued token to authorize product creation, got %d", createW.Code)
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := postJSON(r, "/api/auth/login", handler.CredentialsRequest{Username: "admin", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
	}

	var resp handler.ErrorBody
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "invalid username or password" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := postJSON(r, "/api/auth/login", handler.CredentialsRequest{Username: "nobody", Password: "pw123"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestLoginHandler_FormValues(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	form := url.Values{}
	form.Set("username", "admin")
	form.Set("password", "secret")
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for form-encoded login, got %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the login response")
	}
}

func TestAuthRateLimit(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	creds := handler.CredentialsRequest{Username: "admin", Password: "wrong"}
	limited := false
	for i := 0; i < 10; i++ {
		if w := postJSON(r, "/api/auth/login", creds); w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("expected the auth endpoint to rate limit repeated requests")
	}
}
