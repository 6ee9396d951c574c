package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"binx-portfolio/pkg/config"
	"binx-portfolio/pkg/metrics"
)

// NewRouter wires the site routes, metrics and static files
func NewRouter(cfg *config.Config, photos PhotoSource, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)

	New(photos, cfg.ViewsDir, m).Register(r)
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}

	// Local gallery files are served under the prefix their records link to.
	if prefix := cfg.URLPrefix; strings.HasPrefix(prefix, "/") && strings.HasSuffix(prefix, "/") && prefix != "/" {
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.GalleryDir))))
	}
	r.Handle("/*", http.FileServer(http.Dir(cfg.PublicDir)))

	return r
}
