package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)

	router.HandlerFunc(http.MethodPost, "/v1/users/signup", app.signupUserHandler)
	router.HandlerFunc(http.MethodPost, "/v1/users/signin", app.signinUserHandler)
	router.HandlerFunc(http.MethodPost, "/v1/users/google-auth", app.googleAuthHandler)

	router.HandlerFunc(http.MethodPost, "/v1/blogs", app.requireAuthUser(app.publishBlogHandler))
	router.HandlerFunc(http.MethodGet, "/v1/blogs/latest", app.latestBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/blogs/trending", app.trendingBlogsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/blogs/search", app.searchBlogsHandler)

	router.HandlerFunc(http.MethodGet, "/v1/media/upload-url", app.uploadURLHandler)

	return app.recoverPanic(app.rateLimit(app.logRequest(app.authenticate(router))))
}
