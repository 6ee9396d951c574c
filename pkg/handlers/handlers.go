package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"
	"github.com/go-chi/chi/v5"

	"binx-portfolio/pkg/metrics"
	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/navigation"
	"binx-portfolio/pkg/portfolio"
)

// PhotoSource provides the current registry contents and the sessions
// visible under a filter
type PhotoSource interface {
	Photos(ctx context.Context) ([]models.PhotoRecord, error)
	Sessions(ctx context.Context, filter portfolio.Filter) ([]models.Session, error)
}

// Handler serves the home page, the portfolio browser and the JSON API
type Handler struct {
	photos   PhotoSource
	viewsDir string
	metrics  *metrics.Metrics
}

// New creates a handler rendering templates from viewsDir
func New(photos PhotoSource, viewsDir string, m *metrics.Metrics) *Handler {
	return &Handler{photos: photos, viewsDir: viewsDir, metrics: m}
}

// Register mounts the page and API routes on r
func (h *Handler) Register(r chi.Router) {
	r.Get(navigation.HomePath, h.Home)
	r.Get(navigation.PortfolioPath, h.Portfolio)
	r.Post(navigation.PortfolioPath+"/actions", h.PortfolioAction)

	r.Route("/api", func(r chi.Router) {
		r.Post("/navigate", h.Navigate)
		r.Get("/photos", h.Feed)
		r.Get("/sessions", h.Sessions)
	})
	r.Get("/healthz", h.Health)
}

// Home renders the landing page with the featured gallery
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	log.Debug().Msg("generating home page")

	photos, err := h.photos.Photos(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	page := buildHomePage(photos, r.URL.Query().Get(navigation.ParamCategory))
	h.render(w, r, "index.pug", page)
	h.observePage(navigation.ViewHome, navigation.ModeHome)
}

// Portfolio renders the portfolio browser for the state in the query string
func (h *Handler) Portfolio(w http.ResponseWriter, r *http.Request) {
	photos, err := h.photos.Photos(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	state := navigation.StateFromQuery(navigation.ViewPortfolio, r.URL.Query())
	if err := state.Validate(photos); err != nil {
		h.fail(w, r, err)
		return
	}

	requestLogger(r).Debug().Str("mode", state.Mode().String()).Msg("generating portfolio page")
	h.render(w, r, "portfolio.pug", buildPortfolioPage(photos, state))
	h.observePage(navigation.ViewPortfolio, state.Mode())
}

// PortfolioAction applies a form-posted action to the state carried in the
// form and redirects to the resulting page
func (h *Handler) PortfolioAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	photos, err := h.photos.Photos(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	view := navigation.ViewPortfolio
	if r.PostForm.Get("view") == string(navigation.ViewHome) {
		view = navigation.ViewHome
	}
	state := navigation.StateFromQuery(view, r.PostForm)
	if err := state.Validate(photos); err != nil {
		h.fail(w, r, err)
		return
	}

	req, err := actionFromForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	action, err := req.Action()
	if err != nil {
		h.observeAction("unknown", "rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	next, anchor, err := apply(photos, state, action)
	if err != nil {
		h.observeAction(action.Kind(), "rejected")
		h.fail(w, r, err)
		return
	}
	h.observeAction(action.Kind(), "applied")

	http.Redirect(w, r, next.URL(anchor), http.StatusSeeOther)
}

// apply reduces one action and settles its deferred follow-ups at once
func apply(photos []models.PhotoRecord, s navigation.State, a navigation.Action) (navigation.State, string, error) {
	next, effects, err := navigation.Reduce(photos, s, a)
	if err != nil {
		return s, "", err
	}
	return navigation.Settle(photos, next, effects)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	log := requestLogger(r)

	template, err := pug.CompileFile(name, pug.Options{Dir: compiler.FsDir(h.viewsDir)})
	if err != nil {
		log.Error().Err(err).Str("template", name).Msg("template error")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := template.Execute(w, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("template execution error")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, navigation.ErrUnknownSession), errors.Is(err, navigation.ErrPhotoOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, navigation.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, navigation.ErrUnknownAction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		requestLogger(r).Error().Err(err).Msg("request failed")
		http.Error(w, "Internal server error", status)
		return
	}
	requestLogger(r).Info().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}

func (h *Handler) observePage(view navigation.View, mode navigation.Mode) {
	if h.metrics != nil {
		h.metrics.ObservePage(string(view), mode.String())
	}
}

func (h *Handler) observeAction(action, outcome string) {
	if h.metrics != nil {
		h.metrics.ObserveAction(action, outcome)
	}
}
