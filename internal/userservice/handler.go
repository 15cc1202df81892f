package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/reikohana/inkstone/internal/common"
)

var (
	// ErrInvalidCredentials means the password did not match. ErrNotFound is
	// surfaced separately on signin: the API deliberately tells callers
	// whether the email is registered, trading hardening for UX.
	ErrInvalidCredentials = errors.New("password is incorrect")

	// ErrGoogleAccount rejects a password signin against an account that was
	// created through Google sign-in.
	ErrGoogleAccount = errors.New("account was created using google")

	// ErrPasswordAccount rejects a Google sign-in against an account that
	// was created with a password.
	ErrPasswordAccount = errors.New("account was signed up without google")

	// ErrProviderToken means the provider rejected the presented ID token.
	ErrProviderToken = errors.New("could not verify the provider token")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, issuer *TokenIssuer, verifier IdentityVerifier) *UserService {
	return &UserService{
		m:  newUserModel(db),
		mb: mb,
		t:  issuer,
		v:  verifier,
	}
}

// SignupUser creates a password account, publishes a user.created event for
// the welcome email and returns the canonical auth response.
func (s *UserService) SignupUser(ctx context.Context, fullname, email, password string) (*AuthUser, error) {
	v := common.NewValidator()
	validateFullname(v, fullname)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	username, err := allocateUsername(ctx, email, s.m.usernameExists)
	if err != nil {
		return nil, err
	}

	u := User{
		Fullname:   fullname,
		Email:      email,
		Username:   username,
		Password:   Password{Plain: password},
		ProfileImg: DefaultAvatarURL + username,
	}

	err = u.Password.set(u.Password.Plain)
	if err != nil {
		return nil, err
	}

	err = s.m.insertUser(ctx, &u)
	if err != nil {
		return nil, err
	}

	if err := s.publishUserCreated(ctx, &u); err != nil {
		return nil, err
	}

	return s.formatAuthUser(&u)
}

// SigninUser authenticates a password account by email.
func (s *UserService) SigninUser(ctx context.Context, email, password string) (*AuthUser, error) {
	// Only the email is validated here. The password is judged solely by the
	// hash comparison, and a Google account must be rejected with the
	// wrong-method error no matter what password was sent.
	v := common.NewValidator()
	v.Check(email != "", "email", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user, err := s.m.getUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.GoogleAuth {
		return nil, ErrGoogleAccount
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.formatAuthUser(user)
}

// GoogleSignin verifies a Google ID token and either signs in the matching
// account or creates one flagged google_auth with no password hash. A
// password account with the same email is rejected.
func (s *UserService) GoogleSignin(ctx context.Context, providerToken string) (*AuthUser, error) {
	v := common.NewValidator()
	validateProviderToken(v, providerToken)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	claims, err := s.v.Verify(ctx, providerToken)
	if err != nil {
		return nil, ErrProviderToken
	}

	// Google serves avatars at the size encoded in the URL. Swap the default
	// thumbnail for a higher resolution variant.
	picture := strings.Replace(claims.Picture, "s96-c", "s384-c", 1)

	user, err := s.m.getUserByEmail(ctx, claims.Email)
	switch {
	case err == nil:
		if !user.GoogleAuth {
			return nil, ErrPasswordAccount
		}
	case errors.Is(err, ErrNotFound):
		username, err := allocateUsername(ctx, claims.Email, s.m.usernameExists)
		if err != nil {
			return nil, err
		}

		user = &User{
			Fullname:   claims.Name,
			Email:      claims.Email,
			Username:   username,
			ProfileImg: picture,
			GoogleAuth: true,
		}

		err = s.m.insertUser(ctx, user)
		if err != nil {
			return nil, err
		}

		if err := s.publishUserCreated(ctx, user); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.formatAuthUser(user)
}

// GetUserByID loads the full account record, used by profile endpoints.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	return s.m.getUserByID(ctx, id)
}

// formatAuthUser issues the access token and builds the response shape
// shared by all three signin paths.
func (s *UserService) formatAuthUser(u *User) (*AuthUser, error) {
	token, err := s.t.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthUser{
		AccessToken: token,
		Username:    u.Username,
		Fullname:    u.Fullname,
		ProfileImg:  u.ProfileImg,
	}, nil
}

func (s *UserService) publishUserCreated(ctx context.Context, u *User) error {
	data := struct {
		Email    string
		Fullname string
		Username string
	}{
		Email:    u.Email,
		Fullname: u.Fullname,
		Username: u.Username,
	}

	msg, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return s.mb.Publish(ctx, msg, common.UserCreatedKey, common.UserExchange)
}
