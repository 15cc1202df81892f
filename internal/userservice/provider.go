package userservice

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GoogleVerifier validates Google-issued ID tokens against the configured
// OAuth client id. It satisfies IdentityVerifier.
type GoogleVerifier struct {
	audience string
}

func NewGoogleVerifier(audience string) *GoogleVerifier {
	return &GoogleVerifier{audience: audience}
}

func (g *GoogleVerifier) Verify(ctx context.Context, token string) (*IdentityClaims, error) {
	payload, err := idtoken.Validate(ctx, token, g.audience)
	if err != nil {
		return nil, fmt.Errorf("could not validate id token: %w", err)
	}

	claims := &IdentityClaims{}

	if email, ok := payload.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		claims.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		claims.Picture = picture
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("id token carries no email claim")
	}

	return claims, nil
}
