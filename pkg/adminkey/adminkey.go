package adminkey

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// HeaderName is the HTTP header staff clients send their key in.
const HeaderName = "X-Admin-Key"

// Prefix identifies loyalty admin keys at a glance in logs and configs.
const Prefix = "lak"

// GenerateKey generates a new admin key with the standard prefix.
func GenerateKey() (string, error) {
	// Generate 20 random bytes
	bytes := make([]byte, 20)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	// Encode to base32 and remove padding
	encoded := base32.StdEncoding.EncodeToString(bytes)
	encoded = strings.ReplaceAll(encoded, "=", "")

	return Prefix + "_" + encoded, nil
}

// HasPrefix reports whether a presented credential looks like an admin key.
func HasPrefix(key string) bool {
	return strings.HasPrefix(key, Prefix+"_")
}
