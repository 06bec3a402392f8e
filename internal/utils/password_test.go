package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("hash must verify against the original password")
	}
}

func TestHashPassword_SaltedPerHash(t *testing.T) {
	first, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password must differ (random salt)")
	}
}

func TestHashPassword_UsesConfiguredCost(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("could not read cost from hash: %v", err)
	}
	if cost != bcryptCost {
		t.Errorf("expected cost %d, got %d", bcryptCost, cost)
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, _ := HashPassword("secret123")

	if CheckPassword(hash, "not-the-password") {
		t.Error("wrong password must not verify")
	}
}

func TestCheckPassword_NotAHash(t *testing.T) {
	if CheckPassword("plaintext-not-a-hash", "secret123") {
		t.Error("malformed hash must not verify")
	}
}

func TestGeneratePasswordFromName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     string
	}{
		{"single name", "alice", "Alice@0000"},
		{"full name uses first word", "alice johnson", "Alice@0000"},
		{"already capitalized", "Bob Smith", "Bob@0000"},
		{"empty falls back to default", "", "User@0000"},
		{"unicode first letter", "éva kovács", "Éva@0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeneratePasswordFromName(tt.fullName)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGeneratePasswordFromName_AlwaysHasSuffix(t *testing.T) {
	for _, fullName := range []string{"alice", "", "x", "Jean-Pierre Dupont"} {
		got := GeneratePasswordFromName(fullName)
		if !strings.HasSuffix(got, "@0000") {
			t.Errorf("generated password %q must end with @0000", got)
		}
	}
}
