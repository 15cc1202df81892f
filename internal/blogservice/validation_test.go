package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reikohana/inkstone/internal/common"
)

func publishRequest() *PublishBlogRequest {
	return &PublishBlogRequest{
		Title:       "Hello, World!",
		Description: "a first post",
		Banner:      "https://cdn.example.com/banner.jpeg",
		Tags:        []string{"go"},
		Content:     Content{Blocks: []Block{{Type: "paragraph"}}},
		Draft:       false,
		AuthorID:    1,
	}
}

func TestValidatePublish(t *testing.T) {
	manyTags := make([]string, 11)
	for i := range manyTags {
		manyTags[i] = "tag"
	}

	testCases := []struct {
		name          string
		mutate        func(*PublishBlogRequest)
		expectedField string
	}{
		{
			name:   "complete publish",
			mutate: func(r *PublishBlogRequest) {},
		},
		{
			name:          "missing title",
			mutate:        func(r *PublishBlogRequest) { r.Title = "" },
			expectedField: "title",
		},
		{
			name:          "missing description",
			mutate:        func(r *PublishBlogRequest) { r.Description = "" },
			expectedField: "description",
		},
		{
			name:          "missing banner",
			mutate:        func(r *PublishBlogRequest) { r.Banner = "" },
			expectedField: "banner",
		},
		{
			name:          "no content blocks",
			mutate:        func(r *PublishBlogRequest) { r.Content = Content{} },
			expectedField: "content",
		},
		{
			name:          "no tags",
			mutate:        func(r *PublishBlogRequest) { r.Tags = nil },
			expectedField: "tags",
		},
		{
			name:          "too many tags",
			mutate:        func(r *PublishBlogRequest) { r.Tags = manyTags },
			expectedField: "tags",
		},
		{
			name: "draft needs only a title",
			mutate: func(r *PublishBlogRequest) {
				r.Draft = true
				r.Description = ""
				r.Banner = ""
				r.Tags = nil
				r.Content = Content{}
			},
		},
		{
			name: "draft still needs a title",
			mutate: func(r *PublishBlogRequest) {
				r.Draft = true
				r.Title = ""
			},
			expectedField: "title",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := publishRequest()
			tc.mutate(req)

			err := validatePublish(req)

			if tc.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr common.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Errors, tc.expectedField)
			assert.Len(t, validationErr.Errors, 1)
		})
	}
}

func TestValidatePublishShortCircuits(t *testing.T) {
	// Everything missing: only the first rule in order is reported.
	req := &PublishBlogRequest{}

	err := validatePublish(req)

	var validationErr common.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors, "title")
}
