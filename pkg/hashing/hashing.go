package hashing

import (
	"crypto/sha256"
	"encoding/base64"
)

// Sum returns the SHA-256 digest of b. Never fails, an empty input
// produces the digest of zero bytes.
func Sum(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}

// MaskPassword digests the UTF-8 bytes of plain and encodes the full
// digest as base64. The masked form replaces a password before it is
// logged or compared against a stored credential.
func MaskPassword(plain string) string {
	return base64.StdEncoding.EncodeToString(Sum([]byte(plain)))
}

// ShortMask returns the first 10 characters of the masked password with
// an ellipsis marker. Log lines only, never used for comparison.
func ShortMask(plain string) string {
	return MaskPassword(plain)[:10] + "..."
}
