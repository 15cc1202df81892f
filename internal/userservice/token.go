package userservice

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken means the caller never presented a token. It is kept
	// distinct from ErrInvalidToken so the HTTP layer can answer 401 for the
	// former and 403 for the latter.
	ErrMissingToken = errors.New("no access token")
	ErrInvalidToken = errors.New("access token is invalid")
)

// TokenIssuer signs and verifies stateless access tokens. Verification needs
// no database lookup. A zero ttl issues tokens without an expiry claim;
// whether sessions should expire is a product decision left to configuration.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token bound to the given user id.
func (t *TokenIssuer) Issue(userID int) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub": strconv.Itoa(userID),
		"iat": now.Unix(),
	}

	if t.ttl > 0 {
		claims["exp"] = now.Add(t.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and checks the signature of a token and returns the user id
// it is bound to. Any parse, signature or expiry failure comes back as
// ErrInvalidToken.
func (t *TokenIssuer) Verify(tokenString string) (int, error) {
	if tokenString == "" {
		return 0, ErrMissingToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return 0, ErrInvalidToken
	}

	id, err := strconv.Atoi(sub)
	if err != nil || id < 1 {
		return 0, ErrInvalidToken
	}

	return id, nil
}
