package auth

import "testing"

func TestHashCompare(t *testing.T) {
	h, err := HashPassword("admin123", 4)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if h == "admin123" {
		t.Fatal("password stored in plaintext")
	}
	if err := ComparePassword(h, "admin123"); err != nil {
		t.Fatalf("expected match: %v", err)
	}
	if err := ComparePassword(h, "wrong"); err == nil {
		t.Fatal("expected mismatch")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	b, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ")
	}
}
