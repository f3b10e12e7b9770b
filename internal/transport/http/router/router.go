// Package router defines api routes and middleware.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/example/launchpad/internal/config"
	"github.com/example/launchpad/internal/transport/http/handler"
	"github.com/example/launchpad/internal/web"
)

// NewRouter initializes and configures the http router. Every route except
// the health check sits behind the identity middleware.
func NewRouter(releaseHandler *handler.ReleaseHandler, dashboard *web.Dashboard, access config.Access) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Group(func(r chi.Router) {
		r.Use(Identity(access.IdentityHeader))

		r.Get("/", dashboard.Index)

		r.Route("/api", func(r chi.Router) {
			r.Get("/releases", releaseHandler.ListReleases)
			r.Post("/releases", releaseHandler.CreateRelease)
			r.Delete("/releases/{id}", releaseHandler.DeleteRelease)
			r.Get("/validate-jira/{ticketKey}", releaseHandler.ValidateTicket)
		})
	})

	return r
}
