package blogservice

import (
	"github.com/reikohana/inkstone/internal/common"
)

// validatePublish enforces the completeness rules in order, stopping at the
// first failure so the caller always sees the one field blocking them. A
// draft only needs a title; everything else is required to publish.
func validatePublish(req *PublishBlogRequest) error {
	v := common.NewValidator()

	v.Check(req.Title != "", "title", "must provide a title")
	if !v.Valid() {
		return v.ValidationError()
	}

	if req.Draft {
		return nil
	}

	v.Check(req.Description != "", "description", "must provide a description to publish")
	if !v.Valid() {
		return v.ValidationError()
	}

	v.Check(req.Banner != "", "banner", "must provide a banner to publish")
	if !v.Valid() {
		return v.ValidationError()
	}

	v.Check(len(req.Content.Blocks) > 0, "content", "must provide some content to publish")
	if !v.Valid() {
		return v.ValidationError()
	}

	v.Check(len(req.Tags) >= 1 && len(req.Tags) <= maxTags, "tags", "must provide between 1 and 10 tags to publish")
	if !v.Valid() {
		return v.ValidationError()
	}

	return nil
}

func validateTag(v *common.Validator, tag string) {
	v.Check(tag != "", "tag", "must be provided")
}
