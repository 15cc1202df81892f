package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrDuplicateEmail    = errors.New("duplicate email")
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrNotFound          = errors.New("user not found")
)

func newUserModel(db *sql.DB) *DBModel {
	return &DBModel{db: db}
}

// UniqueViolation reports whether err is a unique-constraint violation on the
// named constraint.
func UniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

// insertUser creates the user row. There is deliberately no prior existence
// check on the email: concurrent signups race, and the unique index is the
// arbiter.
func (m *DBModel) insertUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (fullname, email, username, password_hash, profile_img, google_auth)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	var hash any
	if u.Password.hash != nil {
		hash = u.Password.hash
	}

	args := []any{
		u.Fullname,
		u.Email,
		u.Username,
		hash,
		u.ProfileImg,
		u.GoogleAuth,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		switch {
		case UniqueViolation(err, "users_email_key"):
			return ErrDuplicateEmail
		case UniqueViolation(err, "users_username_key"):
			return ErrDuplicateUsername
		default:
			return err
		}
	}

	return nil
}

func (m *DBModel) getUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, fullname, email, username, password_hash, profile_img, google_auth
		FROM users
		WHERE email = $1`

	var u User
	var hash []byte

	err := m.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Fullname, &u.Email, &u.Username, &hash, &u.ProfileImg, &u.GoogleAuth)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	u.Password.hash = hash

	return &u, nil
}

func (m *DBModel) getUserByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, fullname, email, username, profile_img, google_auth, total_posts, total_reads
		FROM users
		WHERE id = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Fullname, &u.Email, &u.Username, &u.ProfileImg, &u.GoogleAuth, &u.TotalPosts, &u.TotalReads)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *DBModel) usernameExists(ctx context.Context, username string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool

	err := m.db.QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
