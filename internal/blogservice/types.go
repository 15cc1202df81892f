package blogservice

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/reikohana/inkstone/internal/common"
)

const (
	// feedLimit caps the latest/trending/tag feeds.
	feedLimit = 5

	maxTags = 10

	slugSuffixLength = 10
)

type BlogService struct {
	m      *BlogModel
	c      *common.Cache
	logger *slog.Logger
}

type BlogModel struct {
	db *sql.DB
}

// Block is one unit of the structured editor content. Data is kept opaque;
// the editor owns its shape.
type Block struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type Content struct {
	Blocks []Block `json:"blocks"`
}

// Author is the projection of the owning user joined onto feed responses.
type Author struct {
	Username   string `json:"username"`
	Fullname   string `json:"fullname"`
	ProfileImg string `json:"profile_img"`
}

type Activity struct {
	TotalReads int `json:"total_reads"`
	TotalLikes int `json:"total_likes"`
}

type Blog struct {
	ID          int       `json:"-"`
	Slug        string    `json:"blog_id"`
	Title       string    `json:"title"`
	Description string    `json:"des"`
	Banner      string    `json:"banner"`
	Content     Content   `json:"content,omitempty"`
	Tags        []string  `json:"tags"`
	Draft       bool      `json:"draft"`
	AuthorID    int       `json:"-"`
	Author      Author    `json:"author"`
	Activity    Activity  `json:"activity"`
	PublishedAt time.Time `json:"publishedAt"`
}
