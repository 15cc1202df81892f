package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reikohana/inkstone/internal/userservice"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	return &application{
		config:      &Config{Environment: "test", Version: "1.0.0"},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		tokenIssuer: userservice.NewTokenIssuer("test-secret", 0),
	}
}

func TestAuthenticate(t *testing.T) {
	app := newTestApplication(t)

	token, err := app.tokenIssuer.Issue(7)
	require.NoError(t, err)

	otherIssuer := userservice.NewTokenIssuer("other-secret", 0)
	forged, err := otherIssuer.Issue(7)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID int
	}{
		{
			name:       "no header passes through as anonymous",
			header:     "",
			wantStatus: http.StatusOK,
			wantUserID: 0,
		},
		{
			name:       "valid token sets user on context",
			header:     "Bearer " + token,
			wantStatus: http.StatusOK,
			wantUserID: 7,
		},
		{
			name:       "malformed header is rejected",
			header:     "Bearer",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong scheme is rejected",
			header:     "Basic " + token,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "forged token is rejected",
			header:     "Bearer " + forged,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = app.getUserContext(r)
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/v1/blogs/latest", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			app.authenticate(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUserID, gotUserID)
			}
		})
	}
}

func TestRequireAuthUser(t *testing.T) {
	app := newTestApplication(t)

	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	t.Run("anonymous request gets 401", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/v1/blogs", nil)
		w := httptest.NewRecorder()

		app.requireAuthUser(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "no access token")
	})

	t.Run("authenticated request passes", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/v1/blogs", nil)
		r = app.createUserContext(r, 7)
		w := httptest.NewRecorder()

		app.requireAuthUser(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRecoverPanic(t *testing.T) {
	app := newTestApplication(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
	w := httptest.NewRecorder()

	app.recoverPanic(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "close", w.Header().Get("Connection"))
}
