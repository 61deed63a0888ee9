package cryptox

import (
	"encoding/base64"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	for _, size := range []int{TokenSize192, TokenSize256, 16} {
		token, err := GenerateToken(size)
		require.NoError(t, err)
		require.Len(t, token, base64.RawURLEncoding.EncodedLen(size))

		token2, err := GenerateToken(size)
		require.NoError(t, err)
		require.NotEqual(t, token, token2, "tokens should be unique")
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestGenerateTimestampedToken(t *testing.T) {
	issued := time.Unix(1700000000, 0)

	token, err := GenerateTimestampedToken(TokenSize192, issued)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)

	// 24 bytes of hex followed by the unix timestamp.
	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{48}1700000000$`), string(raw))

	other, err := GenerateTimestampedToken(TokenSize192, issued)
	require.NoError(t, err)
	require.NotEqual(t, token, other)

	_, err = GenerateTimestampedToken(0, issued)
	require.Error(t, err)
}

func TestFingerprintToken(t *testing.T) {
	fp1a := FingerprintToken("test-token-1")
	fp1b := FingerprintToken("test-token-1")
	fp2 := FingerprintToken("test-token-2")

	require.Equal(t, fp1a, fp1b, "fingerprint should be deterministic")
	require.NotEqual(t, fp1a, fp2)
	require.Len(t, fp1a, 43, "SHA-256 base64url should be 43 chars")
}

func TestGenerateToken_EntropyQuality(t *testing.T) {
	const count = 100
	seen := make(map[string]bool, count)

	for range count {
		token, err := GenerateTimestampedToken(TokenSize192, time.Now())
		require.NoError(t, err)
		require.NotContains(t, seen, token, "duplicate token generated")
		seen[token] = true
	}
}
