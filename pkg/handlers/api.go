package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/navigation"
	"binx-portfolio/pkg/portfolio"
)

// NavigateRequest is the body of POST /api/navigate
type NavigateRequest struct {
	State  *navigation.State        `json:"state,omitempty"`
	Action navigation.ActionRequest `json:"action"`
}

// EffectView is the wire form of a navigation effect
type EffectView struct {
	Type    string                    `json:"type"`
	Anchor  string                    `json:"anchor,omitempty"`
	DelayMs int64                     `json:"delayMs,omitempty"`
	Action  *navigation.ActionRequest `json:"action,omitempty"`
}

// NavigateResponse carries the reduced state, the effects a client with
// timers should run, and the page address once those effects have settled.
type NavigateResponse struct {
	State   navigation.State `json:"state"`
	Effects []EffectView     `json:"effects"`
	URL     string           `json:"url"`
}

// SessionsResponse is the body of GET /api/sessions
type SessionsResponse struct {
	Filter   portfolio.Filter `json:"filter"`
	Sessions []models.Session `json:"sessions"`
}

// Navigate runs one action through the reducer
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	state := navigation.NewState()
	if req.State != nil {
		state = *req.State
	}

	action, err := req.Action.Action()
	if err != nil {
		h.observeAction("unknown", "rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	photos, err := h.photos.Photos(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := state.Validate(photos); err != nil {
		h.fail(w, r, err)
		return
	}

	next, effects, err := navigation.Reduce(photos, state, action)
	if err != nil {
		h.observeAction(action.Kind(), "rejected")
		h.fail(w, r, err)
		return
	}
	settled, anchor, err := navigation.Settle(photos, next, effects)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.observeAction(action.Kind(), "applied")

	writeJSON(w, r, http.StatusOK, NavigateResponse{
		State:   next,
		Effects: effectViews(effects),
		URL:     settled.URL(anchor),
	})
}

// Feed returns the whole registry as JSON
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	requestLogger(r).Debug().Msg("generating feed")

	photos, err := h.photos.Photos(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, photos)
}

// Sessions returns the session groups for the filter in the query string
func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
	filter := navigation.StateFromQuery(navigation.ViewPortfolio, r.URL.Query()).Filter
	sessions, err := h.photos.Sessions(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, SessionsResponse{Filter: filter, Sessions: sessions})
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func effectViews(effects []navigation.Effect) []EffectView {
	views := make([]EffectView, 0, len(effects))
	for _, e := range effects {
		switch e := e.(type) {
		case navigation.Scroll:
			views = append(views, EffectView{Type: "scroll", Anchor: e.Anchor})
		case navigation.Defer:
			req := requestFor(e.Action)
			views = append(views, EffectView{Type: "defer", DelayMs: e.Delay.Milliseconds(), Action: &req})
		}
	}
	return views
}

// requestFor is the inverse of ActionRequest.Action for the actions the
// reducer defers
func requestFor(a navigation.Action) navigation.ActionRequest {
	req := navigation.ActionRequest{Type: a.Kind()}
	if n, ok := a.(navigation.Navigate); ok {
		req.Value = n.Section
	}
	return req
}

var errInvalidIndex = errors.New("index must be a number")

func actionFromForm(r *http.Request) (navigation.ActionRequest, error) {
	req := navigation.ActionRequest{
		Type:  r.PostForm.Get("action"),
		Value: r.PostForm.Get("value"),
	}
	if raw := r.PostForm.Get("index"); raw != "" {
		i, err := strconv.Atoi(raw)
		if err != nil {
			return req, errInvalidIndex
		}
		req.Index = i
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		requestLogger(r).Error().Err(err).Msg("failed to encode response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(jsonBytes); err != nil {
		requestLogger(r).Warn().Err(err).Msg("failed to write response")
	}
}
