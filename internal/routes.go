package internal

import (
	"net/http"

	"fcd/internal/controllers"
	"fcd/internal/providers"
)

// Routers groups the two route sets: Api is wrapped with the session check,
// Auth stays open so clients can obtain a session in the first place.
type Routers struct {
	Api  providers.RouterProviderInterface
	Auth providers.RouterProviderInterface
}

func InitRoutes(apiController *controllers.ApiController, authController *controllers.AuthController) *Routers {
	api := providers.NewRouterProvider()
	api.Get("/films", http.HandlerFunc(apiController.GetFilms))
	api.Post("/films/add", http.HandlerFunc(apiController.AddFilm))
	api.Put("/films/update", http.HandlerFunc(apiController.UpdateFilm))
	api.Delete("/films/delete", http.HandlerFunc(apiController.DeleteFilm))
	api.Get("/films/recent", http.HandlerFunc(apiController.GetRecentFilms))
	api.Get("/search", http.HandlerFunc(apiController.Search))
	api.Get("/searches/recent", http.HandlerFunc(apiController.GetRecentSearches))

	auth := providers.NewRouterProvider()
	auth.Post("/auth/login", http.HandlerFunc(authController.Login))
	auth.Post("/auth/signup", http.HandlerFunc(authController.Signup))
	auth.Post("/auth/logout", http.HandlerFunc(authController.Logout))
	auth.Get("/auth/me", http.HandlerFunc(authController.Me))

	return &Routers{Api: api, Auth: auth}
}
