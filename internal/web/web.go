// Package web renders the dashboard page.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/example/launchpad/internal/config"
	"github.com/example/launchpad/internal/ctxutil"
	"github.com/example/launchpad/internal/models"
	"github.com/example/launchpad/internal/ports/primary"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Dashboard serves the HTML release decision dashboard.
type Dashboard struct {
	releaseService primary.ReleaseService
	access         config.Access
	index          *template.Template
}

// NewDashboard creates the dashboard with its parsed templates.
func NewDashboard(releaseService primary.ReleaseService, access config.Access) (*Dashboard, error) {
	index, err := template.ParseFS(templates, "templates/index.html.tmpl")
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		releaseService: releaseService,
		access:         access,
		index:          index,
	}, nil
}

// Index renders the dashboard: the recent decisions plus the entry form,
// with delete controls only for privileged users.
func (d *Dashboard) Index(w http.ResponseWriter, r *http.Request) {
	actor := ctxutil.ActorFromContext(r.Context())

	releases, err := d.releaseService.ListReleases(r.Context(), 0)
	if err != nil {
		slog.Error("failed to render dashboard", "error", err)
		http.Error(w, "failed to load releases", http.StatusInternalServerError)
		return
	}

	data := struct {
		Actor        string
		IsPrivileged bool
		Releases     []*models.Release
	}{
		Actor:        actor,
		IsPrivileged: d.access.IsPrivileged(actor),
		Releases:     releases,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.index.Execute(w, data); err != nil {
		slog.Error("failed to execute dashboard template", "error", err)
	}
}
