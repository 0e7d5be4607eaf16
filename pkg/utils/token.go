package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GeneratePublicToken returns a short URL-safe random token. With 6 random
// bytes the token is 8 characters; collisions are handled by the caller.
func GeneratePublicToken() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
