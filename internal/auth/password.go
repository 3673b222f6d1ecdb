// Package auth provides password verification, session tokens, and the
// admin identity and auth-log types for the property store.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. These match the derivation used to produce every
// existing admin-users file (Node's scryptSync defaults: N=16384, r=8, p=1,
// 64-byte key, with the hex salt string fed as the salt bytes), so stored
// verifiers keep working across the migration.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltBytes    = 16
)

// HashPassword derives a salted verifier for a new password.
// Both salt and hash are returned hex-encoded.
func HashPassword(password string) (salt, hash string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generating salt: %w", err)
	}
	salt = hex.EncodeToString(raw)

	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", "", fmt.Errorf("deriving key: %w", err)
	}

	return salt, hex.EncodeToString(key), nil
}

// VerifyPassword re-derives the verifier for a candidate password and
// compares it against the stored hash in constant time.
func VerifyPassword(password, salt, storedHash string) bool {
	stored, err := hex.DecodeString(storedHash)
	if err != nil {
		return false
	}

	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}

	if len(key) != len(stored) {
		return false
	}
	return subtle.ConstantTimeCompare(key, stored) == 1
}
