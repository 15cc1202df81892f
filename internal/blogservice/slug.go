package blogservice

import (
	"regexp"
	"strings"

	"github.com/reikohana/inkstone/internal/common"
)

var (
	nonAlphanumericRX = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespaceRX      = regexp.MustCompile(`\s+`)
)

// makeSlug derives the blog's unique identifier from its title: punctuation
// becomes whitespace, whitespace collapses to hyphens, and a random suffix is
// appended once instead of looping until unique. The unique index on the slug
// column backs the residual collision case.
func makeSlug(title string) (string, error) {
	base := nonAlphanumericRX.ReplaceAllString(title, " ")
	base = strings.TrimSpace(base)
	base = whitespaceRX.ReplaceAllString(base, "-")

	suffix, err := common.RandomString(slugSuffixLength)
	if err != nil {
		return "", err
	}

	if base == "" {
		return suffix, nil
	}

	return base + "-" + suffix, nil
}
