package auth

import (
	"encoding/hex"
	"testing"
)

func TestNewResetToken_Shape(t *testing.T) {
	t.Parallel()

	plaintext, digest, err := NewResetToken()
	if err != nil {
		t.Fatalf("NewResetToken error: %v", err)
	}

	// 32 bytes of randomness, hex-encoded
	if len(plaintext) != 64 {
		t.Fatalf("unexpected plaintext length: %d", len(plaintext))
	}
	if _, err := hex.DecodeString(plaintext); err != nil {
		t.Fatalf("plaintext is not hex: %v", err)
	}

	if digest != HashResetToken(plaintext) {
		t.Fatalf("digest does not match HashResetToken(plaintext)")
	}
	if digest == plaintext {
		t.Fatalf("digest must differ from plaintext")
	}
}

func TestNewResetToken_Unique(t *testing.T) {
	t.Parallel()

	p1, d1, err := NewResetToken()
	if err != nil {
		t.Fatalf("NewResetToken error: %v", err)
	}
	p2, d2, err := NewResetToken()
	if err != nil {
		t.Fatalf("NewResetToken error: %v", err)
	}

	if p1 == p2 || d1 == d2 {
		t.Fatalf("tokens must be unique per call")
	}
}

func TestHashResetToken_Deterministic(t *testing.T) {
	t.Parallel()

	if HashResetToken("abc") != HashResetToken("abc") {
		t.Fatalf("digest must be deterministic")
	}
	if HashResetToken("abc") == HashResetToken("abd") {
		t.Fatalf("different tokens must yield different digests")
	}
}
