package userservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/reikohana/inkstone/internal/common"
)

const (
	// DefaultAvatarURL is the seed-based avatar given to password signups.
	// Google accounts keep the picture from the verified claim instead.
	DefaultAvatarURL = "https://api.dicebear.com/6.x/fun-emoji/svg?seed="

	bcryptCost = 12

	usernameSuffixLength = 5
)

var (
	AnonymousUserID = 0
)

type UserService struct {
	m  *DBModel
	mb common.MessageProducer
	t  *TokenIssuer
	v  IdentityVerifier
}

type DBModel struct {
	db *sql.DB
}

type User struct {
	ID         int       `json:"id"`
	Fullname   string    `json:"fullname"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Password   Password  `json:"-"`
	ProfileImg string    `json:"profile_img"`
	GoogleAuth bool      `json:"google_auth"`
	TotalPosts int       `json:"total_posts"`
	TotalReads int       `json:"total_reads"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Password carries the plaintext only transiently; the hash is nil for
// accounts created through Google sign-in.
type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

// AuthUser is the canonical response shape shared by signup, signin and
// Google sign-in.
type AuthUser struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	Fullname    string `json:"fullname"`
	ProfileImg  string `json:"profile_img"`
}

// IdentityClaims is the subset of a verified provider token this service
// cares about.
type IdentityClaims struct {
	Email   string
	Name    string
	Picture string
}

// IdentityVerifier checks an opaque provider token out-of-band and returns
// the verified claims. The production implementation validates Google ID
// tokens; tests inject a stub.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*IdentityClaims, error)
}
