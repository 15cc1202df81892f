package userservice

import (
	"context"
	"strings"

	"github.com/reikohana/inkstone/internal/common"
)

// allocateUsername derives a handle from the local part of the email. If the
// candidate is already taken a random suffix is appended once and the result
// is accepted without another lookup: the residual collision risk is accepted
// in exchange for a single round trip, and the unique index on usernames
// still catches the pathological case at insert time.
func allocateUsername(ctx context.Context, email string, taken func(context.Context, string) (bool, error)) (string, error) {
	username, _, _ := strings.Cut(email, "@")

	exists, err := taken(ctx, username)
	if err != nil {
		return "", err
	}

	if exists {
		suffix, err := common.RandomString(usernameSuffixLength)
		if err != nil {
			return "", err
		}
		username += suffix
	}

	return username, nil
}
