package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/podcast-api/internal/api"
	apiMiddleware "github.com/phrazzld/podcast-api/internal/api/middleware"
	"github.com/phrazzld/podcast-api/internal/api/shared"
	"github.com/phrazzld/podcast-api/internal/domain"
)

const healthTimeout = 2 * time.Second

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	users := api.NewUserHandler(app.accountService, app.logger)
	catalog := api.NewCatalogHandler(app.catalogService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService, app.accountService)
	loginLimiter := apiMiddleware.NewRateLimiter(
		app.config.RateLimit.LoginPerMinute,
		app.config.RateLimit.Burst,
		apiMiddleware.WithTrustedProxies(app.trustedProxies),
	)
	catalogEditors := apiMiddleware.RequireRole(domain.RoleHost, domain.RoleAdmin)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/users", users.CreateAccount)
		r.With(loginLimiter.Limit).Post("/users/login", users.Login)

		r.Get("/podcasts", catalog.ListPodcasts)
		r.Get("/podcasts/{id}", catalog.GetPodcast)
		r.Get("/podcasts/{id}/episodes", catalog.ListEpisodes)
		r.Get("/podcasts/{id}/episodes/{episodeId}", catalog.GetEpisode)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/me", users.Me)
			r.Patch("/users/me", users.EditProfile)
			r.Get("/users/{id}", users.GetUser)

			r.Group(func(r chi.Router) {
				r.Use(catalogEditors)

				r.Post("/podcasts", catalog.CreatePodcast)
				r.Patch("/podcasts/{id}", catalog.UpdatePodcast)
				r.Delete("/podcasts/{id}", catalog.DeletePodcast)

				r.Post("/podcasts/{id}/episodes", catalog.CreateEpisode)
				r.Patch("/podcasts/{id}/episodes/{episodeId}", catalog.UpdateEpisode)
				r.Delete("/podcasts/{id}/episodes/{episodeId}", catalog.DeleteEpisode)
			})
		})
	})

	r.Get("/health", app.health)

	return r
}

// health reports whether the database is reachable.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := app.db.PingContext(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
