package navigation

import (
	"fmt"
	"net/url"
	"strconv"

	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/registry"
)

// Query parameter names used to carry portfolio state in URLs
const (
	ParamPhotographer = "photographer"
	ParamCategory     = "category"
	ParamQuery        = "q"
	ParamSession      = "session"
	ParamPhoto        = "photo"
)

// Portfolio and home paths
const (
	HomePath      = "/"
	PortfolioPath = "/portfolio"
)

// Query encodes the portfolio part of the state. Defaults are omitted.
func (s State) Query() url.Values {
	v := url.Values{}
	if s.View != ViewPortfolio {
		return v
	}
	if p := s.Filter.Photographer; p != "" && p != registry.All {
		v.Set(ParamPhotographer, p)
	}
	if c := s.Filter.Category; c != "" && c != registry.All {
		v.Set(ParamCategory, c)
	}
	if s.Filter.Query != "" {
		v.Set(ParamQuery, s.Filter.Query)
	}
	if s.Session != "" {
		v.Set(ParamSession, s.Session)
		if s.LightboxOpen {
			v.Set(ParamPhoto, strconv.Itoa(s.Lightbox))
		}
	}
	return v
}

// URL is the page address of the state, with anchor as fragment
func (s State) URL(anchor string) string {
	u := url.URL{Path: HomePath, Fragment: anchor}
	if s.View == ViewPortfolio {
		u.Path = PortfolioPath
		u.RawQuery = s.Query().Encode()
	}
	return u.String()
}

// StateFromQuery rebuilds a state for view from its URL parameters.
// A malformed photo index leaves the lightbox closed.
func StateFromQuery(view View, v url.Values) State {
	s := NewState()
	if view != ViewPortfolio {
		return s
	}
	s.View = ViewPortfolio
	if p := v.Get(ParamPhotographer); p != "" {
		s.Filter.Photographer = p
	}
	if c := v.Get(ParamCategory); c != "" {
		s.Filter.Category = c
	}
	s.Filter.Query = v.Get(ParamQuery)
	s.Session = v.Get(ParamSession)
	if s.Session != "" {
		if raw := v.Get(ParamPhoto); raw != "" {
			if i, err := strconv.Atoi(raw); err == nil && i >= 0 {
				s.LightboxOpen = true
				s.Lightbox = i
			}
		}
	}
	return s
}

// Validate checks that the session and photo named by s are visible under
// its filter. States decoded from URLs must pass before they are rendered.
func (s State) Validate(photos []models.PhotoRecord) error {
	if s.Mode() == ModeHome || s.Session == "" {
		return nil
	}
	session, ok := s.Groups(photos).Get(s.Session)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSession, s.Session)
	}
	if s.LightboxOpen && (s.Lightbox < 0 || s.Lightbox >= len(session)) {
		return fmt.Errorf("%w: %d of %d", ErrPhotoOutOfRange, s.Lightbox, len(session))
	}
	return nil
}
