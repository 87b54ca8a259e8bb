package id

import (
	"fmt"

	"github.com/orris-inc/socialdash/internal/shared/random"
)

const (
	// Base36 alphabet: 0-9, a-z
	Base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// StateTokenLength is the length of OAuth state tokens.
	StateTokenLength = 13

	// TokenSuffixLength is the length of the random part of simulated access/refresh tokens.
	TokenSuffixLength = 11
)

// FromSource builds a random string of the given length over alphabet,
// drawing every character from src.
func FromSource(src random.Source, alphabet string, length int) string {
	if length <= 0 || alphabet == "" {
		return ""
	}

	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[src.IntN(len(alphabet))]
	}
	return string(result)
}

// Base36 returns a lowercase alphanumeric random string.
func Base36(src random.Source, length int) string {
	return FromSource(src, Base36Alphabet, length)
}

// NewStateToken generates an opaque OAuth state token.
func NewStateToken(src random.Source) string {
	return Base36(src, StateTokenLength)
}

// FormatWithPrefix adds a prefix to an existing short ID.
// Example: FormatWithPrefix("instagram", "1718000000000") returns "instagram_1718000000000"
func FormatWithPrefix(prefix, shortID string) string {
	if shortID == "" {
		return ""
	}
	return fmt.Sprintf("%s_%s", prefix, shortID)
}
