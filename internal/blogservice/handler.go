package blogservice

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/reikohana/inkstone/internal/common"
)

func NewBlogService(db *sql.DB, c *common.Cache, logger *slog.Logger) *BlogService {
	return &BlogService{m: newBlogModel(db), c: c, logger: logger}
}

type PublishBlogRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"des"`
	Banner      string   `json:"banner"`
	Tags        []string `json:"tags"`
	Content     Content  `json:"content"`
	Draft       bool     `json:"draft"`
	AuthorID    int      `json:"-"`
}

// PublishBlog saves a draft or publishes a blog and returns its slug. Only a
// publish counts against the author's total_posts; if that counter update
// fails the blog stays saved and the inconsistency is logged rather than
// rolled back.
func (s *BlogService) PublishBlog(ctx context.Context, req *PublishBlogRequest) (string, error) {
	if err := validatePublish(req); err != nil {
		return "", err
	}

	tags := make([]string, len(req.Tags))
	for i, tag := range req.Tags {
		tags[i] = strings.ToLower(tag)
	}

	slug, err := makeSlug(req.Title)
	if err != nil {
		return "", err
	}

	blocks := make([]Block, len(req.Content.Blocks))
	for i, block := range req.Content.Blocks {
		blocks[i] = Block{Type: block.Type, Data: []byte(sanitizeText(string(block.Data)))}
	}

	blog := &Blog{
		Slug:        slug,
		Title:       req.Title,
		Description: req.Description,
		Banner:      req.Banner,
		Content:     Content{Blocks: blocks},
		Tags:        tags,
		Draft:       req.Draft,
		AuthorID:    req.AuthorID,
	}

	err = s.m.insert(ctx, blog)
	if err != nil {
		return "", err
	}

	if !req.Draft {
		if err := s.m.addPostCount(ctx, req.AuthorID, 1); err != nil {
			s.logger.Error("could not update total posts", slog.String("slug", blog.Slug), slog.String("error", err.Error()))
		}

		s.c.Cache.Delete(common.CacheKeyLatestBlogs())
		s.c.Cache.Delete(common.CacheKeyTrendingBlogs())
		for _, tag := range tags {
			s.c.Cache.Delete(common.CacheKeyBlogsByTag(tag))
		}
	}

	return blog.Slug, nil
}

// LatestBlogs returns the newest published blogs.
func (s *BlogService) LatestBlogs(ctx context.Context) ([]Blog, error) {
	if cached, ok := s.c.Get(common.CacheKeyLatestBlogs()); ok {
		return cached.([]Blog), nil
	}

	blogs, err := s.m.latestBlogs(ctx, feedLimit)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyLatestBlogs(), blogs)

	return blogs, nil
}

// TrendingBlogs returns published blogs by read count, like count, recency.
func (s *BlogService) TrendingBlogs(ctx context.Context) ([]Blog, error) {
	if cached, ok := s.c.Get(common.CacheKeyTrendingBlogs()); ok {
		return cached.([]Blog), nil
	}

	blogs, err := s.m.trendingBlogs(ctx, feedLimit)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyTrendingBlogs(), blogs)

	return blogs, nil
}

// SearchBlogsByTag returns published blogs carrying the tag. Tags are stored
// lowercase, so the lookup lowercases too.
func (s *BlogService) SearchBlogsByTag(ctx context.Context, tag string) ([]Blog, error) {
	v := common.NewValidator()
	validateTag(v, tag)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	tag = strings.ToLower(tag)

	if cached, ok := s.c.Get(common.CacheKeyBlogsByTag(tag)); ok {
		return cached.([]Blog), nil
	}

	blogs, err := s.m.blogsByTag(ctx, tag, feedLimit)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlogsByTag(tag), blogs)

	return blogs, nil
}
