package blogservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	testCases := []struct {
		title  string
		prefix string
	}{
		{title: "Hello, World!", prefix: "Hello-World-"},
		{title: "  spaced   out  ", prefix: "spaced-out-"},
		{title: "plain", prefix: "plain-"},
		{title: "100% Go", prefix: "100-Go-"},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			slug, err := makeSlug(tc.title)
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(slug, tc.prefix), "slug %q should start with %q", slug, tc.prefix)
			assert.Len(t, slug, len(tc.prefix)+slugSuffixLength)
		})
	}
}

func TestMakeSlugUnique(t *testing.T) {
	first, err := makeSlug("Hello, World!")
	assert.NoError(t, err)

	second, err := makeSlug("Hello, World!")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestMakeSlugSymbolOnlyTitle(t *testing.T) {
	slug, err := makeSlug("!!!")
	assert.NoError(t, err)
	assert.Len(t, slug, slugSuffixLength)
}
