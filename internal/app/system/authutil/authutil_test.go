package authutil_test

import (
	"testing"

	"github.com/dalemusser/coursehub/internal/app/system/authutil"
)

func TestHashPassword_Valid(t *testing.T) {
	password := "SecurePassword123"

	hash, err := authutil.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "" {
		t.Error("expected hash to be non-empty")
	}
	if hash == password {
		t.Error("hash should not equal plain password")
	}
	// bcrypt hashes start with $2a$ or $2b$
	if hash[0] != '$' {
		t.Error("expected bcrypt hash to start with $")
	}
}

func TestHashPassword_DifferentHashesForSamePassword(t *testing.T) {
	password := "SecurePassword123"

	hash1, err := authutil.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	hash2, err := authutil.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	// bcrypt uses random salt, so hashes should be different
	if hash1 == hash2 {
		t.Error("expected different hashes for same password (random salt)")
	}
}

func TestCheckPassword_Correct(t *testing.T) {
	password := "SecurePassword123"

	hash, err := authutil.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !authutil.CheckPassword(hash, password) {
		t.Error("expected correct password to verify")
	}
}

func TestCheckPassword_Wrong(t *testing.T) {
	hash, err := authutil.HashPassword("SecurePassword123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if authutil.CheckPassword(hash, "WrongPassword") {
		t.Error("expected wrong password to fail verification")
	}
	if authutil.CheckPassword(hash, "") {
		t.Error("expected empty password to fail verification")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	if authutil.CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("expected garbage hash to fail verification")
	}
}
