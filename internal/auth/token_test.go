package auth

import (
	"testing"
	"time"
)

func TestTokenSigner_RoundTrip(t *testing.T) {
	signer := NewTokenSigner("secret", time.Hour)

	token, err := signer.Sign(42, "alice")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := signer.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Subject != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenSigner_RejectsWrongSecretAndExpired(t *testing.T) {
	signer := NewTokenSigner("secret", time.Hour)
	token, err := signer.Sign(42, "alice")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	other := NewTokenSigner("different", time.Hour)
	if _, err := other.Parse(token); err == nil {
		t.Fatalf("expected error for wrong secret")
	}

	expired := NewTokenSigner("secret", -time.Minute)
	token, err = expired.Sign(42, "alice")
	if err != nil {
		t.Fatalf("sign expired: %v", err)
	}
	if _, err := expired.Parse(token); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(0) // out of range, falls back to default cost

	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret" {
		t.Fatalf("plaintext stored")
	}
	if err := hasher.Compare(hash, "secret"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}
