package userservice

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenIssueVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0)

	token, err := issuer.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	id, err := issuer.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestTokenVerifyMissing(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0)

	_, err := issuer.Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestTokenVerifyTampered(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0)

	token, err := issuer.Issue(42)
	assert.NoError(t, err)

	_, err = issuer.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-one", 0).Issue(7)
	assert.NoError(t, err)

	_, err = NewTokenIssuer("secret-two", 0).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	claims := jwt.MapClaims{
		"sub": "7",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = issuer.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWithoutExpiryDoesNotExpire(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0)

	token, err := issuer.Issue(7)
	assert.NoError(t, err)

	id, err := issuer.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, id)
}
