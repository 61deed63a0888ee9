package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// Token size constants (in bytes before encoding).
const (
	// TokenSize192 is the entropy of session access and refresh tokens.
	TokenSize192 = 24
	// TokenSize256 provides 256 bits of entropy (43 chars base64url).
	TokenSize256 = 32
)

// GenerateToken creates a random token of size bytes, base64url encoded
// without padding.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateTimestampedToken creates a session token: size random bytes in hex
// followed by the unix issuance time, base64url encoded. The suffix keeps two
// tokens apart even if the random part ever repeated.
func GenerateTimestampedToken(size int, issuedAt time.Time) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	raw := hex.EncodeToString(buf) + strconv.FormatInt(issuedAt.Unix(), 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw)), nil
}

// FingerprintToken returns the base64url SHA-256 of a token (43 chars). Only
// fingerprints are stored; the token itself leaves the process once.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
