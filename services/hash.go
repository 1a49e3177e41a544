package services

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// hexDigestPattern matches values the caller already hashed. Checked
// before any normalization so pre-hashed input is never hashed twice.
var hexDigestPattern = regexp.MustCompile(`^[A-Fa-f0-9]{64}$`)

// hashField normalizes and one-way-hashes a sensitive value. A nil value
// stays nil and an already-hashed value is returned verbatim; anything
// else is trimmed, lowercased and SHA-256 digested to lowercase hex.
func hashField(value *string) *string {
	if value == nil || hexDigestPattern.MatchString(*value) {
		return value
	}

	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(*value))))
	digest := hex.EncodeToString(sum[:])
	return &digest
}
