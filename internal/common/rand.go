package common

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// RandomString returns a lowercase alphanumeric string of length n. It is
// used for the single-attempt uniqueness suffixes on usernames and blog
// slugs, so n must stay small enough that the suffix is readable but large
// enough that a collision is vanishingly unlikely.
func RandomString(n int) (string, error) {
	randomBytes := make([]byte, n)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", err
	}

	s := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	return strings.ToLower(s[:n]), nil
}
