package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	repo "github.com/Githubspruchir/InventoryStore/internal/repo"
	"github.com/Githubspruchir/InventoryStore/internal/stock"
	"github.com/Githubspruchir/InventoryStore/internal/storage"
)

// ErrorBody is the structured shape every failed request gets back.
type ErrorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}

// writeError sends the structured error body with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	body := ErrorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to write error response: %v", err)
	}
}

// writeDomainError maps a domain failure onto the structured error path.
// Every error kind ends up here so nothing surfaces as an unstructured 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var policyErr *stock.PolicyError
	switch {
	case errors.Is(err, repo.ErrProductNotFound),
		errors.Is(err, repo.ErrUserNotFound),
		errors.Is(err, storage.ErrImageNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repo.ErrDuplicateUsername):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &policyErr):
		writeError(w, http.StatusBadRequest, policyErr.Message)
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
