// Package hashing provides one-way password hashing and verification.
// Only this package computes or checks password digests; the rest of the
// server handles opaque digest strings.
package hashing

// Hasher hashes plaintext passwords into salted digests and verifies
// candidates against stored digests.
type Hasher interface {
	// Hash returns a digest embedding a per-call random salt, so hashing the
	// same plaintext twice yields different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. The comparison is
	// constant-time with respect to the digest contents.
	Verify(plaintext string, digest string) bool
}
