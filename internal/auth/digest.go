package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest is the credential one-way function: hex-encoded SHA-256 of the raw
// password. It is deliberately deterministic and unsalted — login matches the
// stored digest by equality, and the shipped dataset was written this way.
// Known limitation: identical passwords produce identical digests across
// tenants.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
