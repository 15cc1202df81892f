package blogservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/lib/pq"

	"github.com/reikohana/inkstone/internal/userservice"
)

var (
	ErrDuplicateSlug  = errors.New("duplicate blog id")
	ErrRecordNotFound = errors.New("record not found")
	ErrUserForeignKey = errors.New("author does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// ForeignKeyError reports whether err is a foreign key violation on the
// named constraint.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *BlogModel) insert(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs (slug, title, description, banner, content, tags, draft, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, published_at`

	content, err := json.Marshal(blog.Content)
	if err != nil {
		return err
	}

	args := []any{
		blog.Slug,
		blog.Title,
		blog.Description,
		blog.Banner,
		content,
		pq.Array(blog.Tags),
		blog.Draft,
		blog.AuthorID,
	}

	err = m.db.QueryRowContext(ctx, query, args...).Scan(&blog.ID, &blog.PublishedAt)
	if err != nil {
		switch {
		case userservice.UniqueViolation(err, "blogs_slug_key"):
			return ErrDuplicateSlug
		case ForeignKeyError(err, "blogs_author_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

// addPostCount bumps the author's published-post counter. It runs outside
// the insert's transaction scope on purpose: a failure here leaves the saved
// blog in place.
func (m *BlogModel) addPostCount(ctx context.Context, authorID, delta int) error {
	query := `
		UPDATE users
		SET total_posts = total_posts + $1
		WHERE id = $2`

	res, err := m.db.ExecContext(ctx, query, delta, authorID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// latestBlogs returns published blogs, newest first, with the author
// projection joined on.
func (m *BlogModel) latestBlogs(ctx context.Context, limit int) ([]Blog, error) {
	query := `
		SELECT b.slug, b.title, b.description, b.banner, b.tags, b.total_reads, b.total_likes, b.published_at,
		       u.username, u.fullname, u.profile_img
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.draft = false
		ORDER BY b.published_at DESC
		LIMIT $1`

	return m.queryBlogs(ctx, query, limit)
}

// trendingBlogs orders published blogs by reads, then likes, then recency.
func (m *BlogModel) trendingBlogs(ctx context.Context, limit int) ([]Blog, error) {
	query := `
		SELECT b.slug, b.title, b.description, b.banner, b.tags, b.total_reads, b.total_likes, b.published_at,
		       u.username, u.fullname, u.profile_img
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.draft = false
		ORDER BY b.total_reads DESC, b.total_likes DESC, b.published_at DESC
		LIMIT $1`

	return m.queryBlogs(ctx, query, limit)
}

// blogsByTag returns published blogs carrying the tag, in trending order.
func (m *BlogModel) blogsByTag(ctx context.Context, tag string, limit int) ([]Blog, error) {
	query := `
		SELECT b.slug, b.title, b.description, b.banner, b.tags, b.total_reads, b.total_likes, b.published_at,
		       u.username, u.fullname, u.profile_img
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.draft = false AND $1 = ANY(b.tags)
		ORDER BY b.total_reads DESC, b.total_likes DESC, b.published_at DESC
		LIMIT $2`

	return m.queryBlogs(ctx, query, tag, limit)
}

func (m *BlogModel) queryBlogs(ctx context.Context, query string, args ...any) ([]Blog, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []Blog
	for rows.Next() {
		var blog Blog
		err := rows.Scan(
			&blog.Slug,
			&blog.Title,
			&blog.Description,
			&blog.Banner,
			pq.Array(&blog.Tags),
			&blog.Activity.TotalReads,
			&blog.Activity.TotalLikes,
			&blog.PublishedAt,
			&blog.Author.Username,
			&blog.Author.Fullname,
			&blog.Author.ProfileImg,
		)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}
