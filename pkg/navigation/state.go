// Package navigation holds the site's view state and the reducer that moves
// it between the home page, the portfolio index, a session and the lightbox.
package navigation

import (
	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/portfolio"
)

// View is the top-level page
type View string

const (
	ViewHome      View = "home"
	ViewPortfolio View = "portfolio"
)

// Mode is the position in the navigation state machine
type Mode int

const (
	ModeHome Mode = iota
	ModeIndex
	ModeSession
	ModeLightbox
)

func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "home"
	case ModeIndex:
		return "index"
	case ModeSession:
		return "session"
	case ModeLightbox:
		return "lightbox"
	default:
		return "unknown"
	}
}

// State is the complete view state of one visitor
type State struct {
	View   View             `json:"view"`
	Filter portfolio.Filter `json:"filter"`
	// Session is the drilled-down session, empty on the index.
	Session      string `json:"session,omitempty"`
	LightboxOpen bool   `json:"lightboxOpen"`
	Lightbox     int    `json:"lightbox"`
	// Exiting is set while the hero fades out before the portfolio opens.
	Exiting bool `json:"exiting,omitempty"`
}

// NewState returns the state of a fresh visit
func NewState() State {
	return State{View: ViewHome, Filter: portfolio.DefaultFilter()}
}

// Mode derives the state machine position
func (s State) Mode() Mode {
	switch {
	case s.View != ViewPortfolio:
		return ModeHome
	case s.Session == "":
		return ModeIndex
	case s.LightboxOpen:
		return ModeLightbox
	default:
		return ModeSession
	}
}

// Groups returns the sessions visible under the current filter
func (s State) Groups(photos []models.PhotoRecord) portfolio.Groups {
	return portfolio.Browse(photos, s.Filter)
}

// SessionPhotos returns the photos of the drilled-down session
func (s State) SessionPhotos(photos []models.PhotoRecord) []models.PhotoRecord {
	if s.Session == "" {
		return nil
	}
	session, _ := s.Groups(photos).Get(s.Session)
	return session
}

// NoResults reports whether the index has nothing to show for the filter
func (s State) NoResults(photos []models.PhotoRecord) bool {
	return s.Mode() == ModeIndex && s.Groups(photos).Len() == 0
}

// resetPortfolio drops everything the portfolio browser kept
func (s State) resetPortfolio() State {
	s.Filter = portfolio.DefaultFilter()
	s.Session = ""
	s.closeLightbox()
	return s
}

func (s *State) closeLightbox() {
	s.LightboxOpen = false
	s.Lightbox = 0
}
