package hash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const saltBytes = 8

// HashPassword returns the stored form `salt + "$" + hex(sha256(salt+password))`
// with a fresh random salt. The scheme has no work factor; it matches the
// format existing records were written with, so changing it would invalidate
// every stored credential.
func HashPassword(password string) (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt := hex.EncodeToString(buf)
	return hashWith(salt, password), nil
}

func hashWith(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return salt + "$" + hex.EncodeToString(sum[:])
}

// CheckPassword recomputes the digest with the salt extracted from the stored
// form. A stored form without a separator never verifies.
func CheckPassword(stored, password string) bool {
	salt, _, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}
	recomputed := hashWith(salt, password)
	return subtle.ConstantTimeCompare([]byte(recomputed), []byte(stored)) == 1
}
