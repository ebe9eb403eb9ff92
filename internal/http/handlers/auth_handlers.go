package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Githubspruchir/InventoryStore/internal/auth"
	"github.com/Githubspruchir/InventoryStore/internal/models"
	"github.com/Githubspruchir/InventoryStore/internal/repo"
)

// credentials reads a username/password pair from a JSON body, falling back
// to form or query values for clients that send request parameters.
func credentials(w http.ResponseWriter, r *http.Request) (CredentialsRequest, bool) {
	var creds CredentialsRequest

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := readJSON(w, r, &creds); err != nil {
			writeError(w, http.StatusBadRequest, "invalid input")
			return creds, false
		}
	} else {
		creds.Username = r.FormValue("username")
		creds.Password = r.FormValue("password")
	}

	if creds.Username == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return creds, false
	}
	return creds, true
}

// SignupHandler godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} SignupResult
// @Failure 400 {object} ErrorBody
// @Router /api/auth/signup [post]
func SignupHandler(w http.ResponseWriter, r *http.Request) {
	creds, ok := credentials(w, r)
	if !ok {
		return
	}

	hashed, err := auth.HashPassword(creds.Password, bcryptCost)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	user := models.User{
		Username:     creds.Username,
		PasswordHash: hashed,
		Role:         models.RoleUser,
	}

	if _, err := userRepo.CreateUser(user); err != nil {
		writeDomainError(w, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, SignupResult{Message: "User registered successfully"})
}

// LoginHandler godoc
// @Summary Authenticate and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorBody
// @Failure 401 {object} ErrorBody
// @Router /api/auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	creds, ok := credentials(w, r)
	if !ok {
		return
	}

	user, err := userRepo.GetByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		writeDomainError(w, err)
		return
	}

	if !auth.VerifyPassword(user.PasswordHash, creds.Password) {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, LoginResult{Token: token})
}
