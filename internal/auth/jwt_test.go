package auth

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")
	defer os.Unsetenv("JWT_SECRET")

	userID := uuid.New().String()
	email := "test@example.com"

	token, err := GenerateToken(userID, email, RoleCustomer)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	gotID, gotEmail, gotRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if gotID != userID {
		t.Errorf("userID = %s, want %s", gotID, userID)
	}
	if gotEmail != email {
		t.Errorf("email = %s, want %s", gotEmail, email)
	}
	if gotRole != RoleCustomer {
		t.Errorf("role = %s, want %s", gotRole, RoleCustomer)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")
	defer os.Unsetenv("JWT_SECRET")

	if _, _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("garbage token validated")
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")
	defer os.Unsetenv("JWT_SECRET")

	if _, err := GenerateToken("", "x@example.com", RoleCustomer); err == nil {
		t.Fatal("empty userID accepted")
	}
}
