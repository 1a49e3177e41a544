package services

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFieldNilStaysNil(t *testing.T) {
	assert.Nil(t, hashField(nil))
}

func TestHashFieldAlreadyHashedPassesThrough(t *testing.T) {
	digests := []string{
		"2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae",
		"2C26B46B68FFC68FF99B453C1D30413413422D706483BFA0F98A5E886266E7AE",
		"aAbBcCdDeEfF00112233445566778899aabbccddeeff001122334455667788ff",
	}
	for _, digest := range digests {
		got := hashField(&digest)
		require.NotNil(t, got)
		assert.Equal(t, digest, *got, "pre-hashed value must not be rehashed")
	}
}

func TestHashFieldNormalizesBeforeHashing(t *testing.T) {
	raw := "  Jane@Example.COM "
	normalized := "jane@example.com"

	got := hashField(&raw)
	require.NotNil(t, got)

	sum := sha256.Sum256([]byte(normalized))
	assert.Equal(t, hex.EncodeToString(sum[:]), *got)

	// Hashing the normalized form directly yields the same digest
	direct := hashField(&normalized)
	require.NotNil(t, direct)
	assert.Equal(t, *got, *direct)
}

func TestHashFieldOutputShape(t *testing.T) {
	inputs := []string{"a@b.com", "+1 555 0100", "Menlo Park", ""}
	for _, input := range inputs {
		value := input
		got := hashField(&value)
		require.NotNil(t, got)
		assert.Len(t, *got, 64)
		assert.Regexp(t, "^[a-f0-9]{64}$", *got, "digest must be lowercase hex")
	}
}

func TestHashFieldEmptyStringIsHashedNotDropped(t *testing.T) {
	empty := ""
	got := hashField(&empty)
	require.NotNil(t, got, "only nil is treated as absent")
	assert.NotEqual(t, "", *got)
}

func TestHashFieldNonHexSixtyFourCharsIsHashed(t *testing.T) {
	// 64 chars but not hex, so it must be hashed like any raw value
	value := "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"
	got := hashField(&value)
	require.NotNil(t, got)
	assert.NotEqual(t, value, *got)
	assert.Regexp(t, "^[a-f0-9]{64}$", *got)
}
