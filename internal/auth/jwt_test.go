package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Githubspruchir/InventoryStore/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	Configure("unit-test-secret", time.Minute)

	token, err := GenerateToken(models.User{Username: "alice", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	_, claims, err := TokenClaims("Bearer " + token)
	if err != nil {
		t.Fatalf("parsing token: %v", err)
	}
	if claims["sub"] != "alice" {
		t.Errorf("expected subject 'alice', got %v", claims["sub"])
	}
	if claims["role"] != models.RoleUser {
		t.Errorf("expected role %q, got %v", models.RoleUser, claims["role"])
	}
}

func TestTokenClaims_MissingBearer(t *testing.T) {
	Configure("unit-test-secret", time.Minute)

	for _, header := range []string{"", "token-without-scheme", "Basic abc"} {
		if _, _, err := TokenClaims(header); err == nil {
			t.Errorf("expected an error for header %q", header)
		}
	}
}

func TestTokenClaims_WrongSecret(t *testing.T) {
	Configure("first-secret", time.Minute)
	token, err := GenerateToken(models.User{Username: "alice"})
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	Configure("second-secret", time.Minute)
	if _, _, err := TokenClaims("Bearer " + token); err == nil {
		t.Error("expected a token signed with another secret to be rejected")
	}
}

func TestTokenClaims_Expired(t *testing.T) {
	Configure("unit-test-secret", time.Minute)
	tokenTTL = -time.Minute
	defer Configure("unit-test-secret", time.Minute)

	token, err := GenerateToken(models.User{Username: "alice"})
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	if _, _, err := TokenClaims("Bearer " + token); err == nil {
		t.Error("expected an expired token to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plain password")
	}

	if !VerifyPassword(hash, "s3cret") {
		t.Error("expected the correct password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("expected a wrong password to fail verification")
	}
}
