package utils

import (
	"testing"
	"time"
)

func TestNewManagerEmptyKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected an error for an empty signing key")
	}
}

func TestManagerRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatal(err)
	}

	token, err := m.NewJWT("agent@bma.example", "2", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	email, role, err := m.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if email != "agent@bma.example" {
		t.Errorf("email = %q", email)
	}
	if role != "2" {
		t.Errorf("role = %q", role)
	}
}

func TestManagerParseRejectsWrongKey(t *testing.T) {
	issuer, err := NewManager("issuer-key")
	if err != nil {
		t.Fatal(err)
	}
	verifier, err := NewManager("other-key")
	if err != nil {
		t.Fatal(err)
	}

	token, err := issuer.NewJWT("agent@bma.example", "2", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected a signature error")
	}
}

func TestManagerParseRejectsExpired(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatal(err)
	}

	token, err := m.NewJWT("agent@bma.example", "2", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.Parse(token); err == nil {
		t.Fatal("expected an expiry error")
	}
}

func TestManagerParseRejectsGarbage(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.Parse("not-a-token"); err == nil {
		t.Fatal("expected a parse error")
	}
}
