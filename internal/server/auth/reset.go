package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// resetTokenBytes is the amount of randomness in a reset token. 32 bytes is
// enough that a fast digest (rather than a work-factor hash) is safe for the
// stored side: the token cannot be brute-forced offline.
const resetTokenBytes = 32

// NewResetToken generates a password-reset token and the digest under which
// it is stored. The plaintext goes into the emailed link exactly once; the
// server keeps only the digest.
func NewResetToken() (plaintext string, digest string, err error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	plaintext = hex.EncodeToString(b)
	return plaintext, HashResetToken(plaintext), nil
}

// HashResetToken returns the hex SHA-256 digest of a plaintext reset token.
// Lookup at reset time digests the presented token and matches it against
// the stored value.
func HashResetToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
