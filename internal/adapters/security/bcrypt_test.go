package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("pw1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "pw1" {
		t.Fatalf("hash must not equal plaintext")
	}
	if err := hasher.Compare(hash, "pw1"); err != nil {
		t.Fatalf("compare with correct password failed: %v", err)
	}
	if err := hasher.Compare(hash, "pw2"); err == nil {
		t.Fatalf("compare with wrong password should fail")
	}
}

func TestBcryptHasherDefaultsCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost fallback, got %d", hasher.cost)
	}
}
