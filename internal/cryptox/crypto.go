// Package cryptox holds the hashing primitives used by the server:
// content checksums and at-rest digesting of invite token secrets.
package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// ContentChecksum returns the lowercase hex SHA-256 digest of data.
// It is the checksum compared against the caller-supplied value when an
// upload is finalized.
func ContentChecksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DigestToken derives the at-rest digest of an invite token secret.
// Tokens are stored digested so a leaked database dump cannot be used to
// claim pending invites.
func DigestToken(token []byte, salt []byte) []byte {
	return argon2.IDKey(token, salt, 1, 64*1024, 4, 32)
}

// ChecksumsEqual compares two hex checksums in constant time.
func ChecksumsEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
