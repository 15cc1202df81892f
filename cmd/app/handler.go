package main

import (
	"errors"
	"net/http"

	"github.com/reikohana/inkstone/internal/blogservice"
	"github.com/reikohana/inkstone/internal/common"
	"github.com/reikohana/inkstone/internal/userservice"
)

func (app *application) signupUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Fullname string `json:"fullname"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.userService.SignupUser(r.Context(), input.Fullname, input.Email, input.Password)
	if err != nil {
		var validationError common.ValidationError
		switch {
		case errors.As(err, &validationError):
			app.failedValidationResponse(w, r, validationError.Errors)
		case errors.Is(err, userservice.ErrDuplicateEmail):
			app.failedValidationResponse(w, r, map[string]string{"email": "email already exists"})
		case errors.Is(err, userservice.ErrDuplicateUsername):
			app.failedValidationResponse(w, r, map[string]string{"email": "email already exists"})
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) signinUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.userService.SigninUser(r.Context(), input.Email, input.Password)
	if err != nil {
		var validationError common.ValidationError
		switch {
		case errors.As(err, &validationError):
			app.failedValidationResponse(w, r, validationError.Errors)
		case errors.Is(err, userservice.ErrNotFound):
			app.forbiddenResponse(w, r, "email is not registered")
		case errors.Is(err, userservice.ErrInvalidCredentials):
			app.forbiddenResponse(w, r, "password is incorrect")
		case errors.Is(err, userservice.ErrGoogleAccount):
			app.forbiddenResponse(w, r, "account was created using google. try logging in with google")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) googleAuthHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		AccessToken string `json:"access_token"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.userService.GoogleSignin(r.Context(), input.AccessToken)
	if err != nil {
		var validationError common.ValidationError
		switch {
		case errors.As(err, &validationError):
			app.failedValidationResponse(w, r, validationError.Errors)
		case errors.Is(err, userservice.ErrProviderToken):
			app.serverErrorResponse(w, r, err)
		case errors.Is(err, userservice.ErrPasswordAccount):
			app.forbiddenResponse(w, r, "this email was signed up without google. please log in with a password to access the account")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) publishBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.PublishBlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	input.AuthorID = app.getUserContext(r)

	slug, err := app.blogService.PublishBlog(r.Context(), &input)
	if err != nil {
		var validationError common.ValidationError
		switch {
		case errors.As(err, &validationError):
			app.failedValidationResponse(w, r, validationError.Errors)
		case errors.Is(err, blogservice.ErrDuplicateSlug):
			app.failedValidationResponse(w, r, map[string]string{"title": "a blog with this title already exists"})
		case errors.Is(err, blogservice.ErrUserForeignKey):
			app.invalidTokenResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"id": slug}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) latestBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.LatestBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) trendingBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.TrendingBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) searchBlogsHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Tag string `json:"tag"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	blogs, err := app.blogService.SearchBlogsByTag(r.Context(), input.Tag)
	if err != nil {
		var validationError common.ValidationError
		switch {
		case errors.As(err, &validationError):
			app.failedValidationResponse(w, r, validationError.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) uploadURLHandler(w http.ResponseWriter, r *http.Request) {
	url, err := app.mediaService.BannerUploadURL(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"upload_url": url}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
