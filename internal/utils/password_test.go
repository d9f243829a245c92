package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordIsSaltedAndVerifies(t *testing.T) {
	h1, err := HashPassword("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, _ := HashPassword("correct horse", bcrypt.MinCost)
	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
	if h1 == "correct horse" {
		t.Error("hash must not equal the plaintext")
	}
	if !VerifyPassword(h1, "correct horse") {
		t.Error("VerifyPassword rejected the right password")
	}
	if VerifyPassword(h1, "wrong horse") {
		t.Error("VerifyPassword accepted a wrong password")
	}
	if VerifyPassword("correct horse", "correct horse") {
		t.Error("a plaintext stored value must never verify")
	}
}

func TestHashPasswordRejectsLongInput(t *testing.T) {
	if _, err := HashPassword(strings.Repeat("x", 73), bcrypt.MinCost); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}
