package navigation

import (
	"errors"
	"fmt"
	"time"
)

// Transition delays
const (
	EnterGalleryDelay  = 500 * time.Millisecond
	SectionScrollDelay = 100 * time.Millisecond
)

// Lightbox keys
const (
	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// ErrUnknownAction is returned when an action name cannot be decoded
var ErrUnknownAction = errors.New("unknown action")

// Action is a user or timer event fed to Reduce
type Action interface {
	Kind() string
}

type (
	// EnterGallery starts the hero fade that ends on the portfolio
	EnterGallery struct{}
	// ShowPortfolio switches to the portfolio browser
	ShowPortfolio struct{}
	// Navigate goes to a home page section; an empty section means the top
	Navigate struct{ Section string }
	// SelectPhotographer toggles the photographer filter
	SelectPhotographer struct{ Name string }
	// SelectCategory toggles the category filter
	SelectCategory struct{ Name string }
	// ClearPhotographer removes the photographer filter
	ClearPhotographer struct{}
	// ClearCategory removes the category filter
	ClearCategory struct{}
	// SetQuery replaces the search text
	SetQuery struct{ Query string }
	// ResetFilters restores all filters to their defaults
	ResetFilters struct{}
	// SelectSession opens a session from the index
	SelectSession struct{ Name string }
	// Back leaves the current session, or the portfolio when on the index
	Back struct{}
	// OpenLightbox shows the photo at Index of the current session
	OpenLightbox struct{ Index int }
	NextPhoto    struct{}
	PrevPhoto    struct{}
	// CloseLightbox returns to the session
	CloseLightbox struct{}
	// KeyPress is a keyboard event while the portfolio is shown
	KeyPress struct{ Key string }
)

func (EnterGallery) Kind() string       { return "enter_gallery" }
func (ShowPortfolio) Kind() string      { return "show_portfolio" }
func (Navigate) Kind() string           { return "navigate" }
func (SelectPhotographer) Kind() string { return "select_photographer" }
func (SelectCategory) Kind() string     { return "select_category" }
func (ClearPhotographer) Kind() string  { return "clear_photographer" }
func (ClearCategory) Kind() string      { return "clear_category" }
func (SetQuery) Kind() string           { return "set_query" }
func (ResetFilters) Kind() string       { return "reset_filters" }
func (SelectSession) Kind() string      { return "select_session" }
func (Back) Kind() string               { return "back" }
func (OpenLightbox) Kind() string       { return "open_lightbox" }
func (NextPhoto) Kind() string          { return "next_photo" }
func (PrevPhoto) Kind() string          { return "prev_photo" }
func (CloseLightbox) Kind() string      { return "close_lightbox" }
func (KeyPress) Kind() string           { return "key" }

// ActionRequest is the wire form of an action used by forms, the JSON API
// and the terminal browser.
type ActionRequest struct {
	Type  string `json:"action"`
	Value string `json:"value,omitempty"`
	Index int    `json:"index,omitempty"`
}

// Action decodes the request
func (r ActionRequest) Action() (Action, error) {
	switch r.Type {
	case "enter_gallery":
		return EnterGallery{}, nil
	case "show_portfolio":
		return ShowPortfolio{}, nil
	case "navigate":
		return Navigate{Section: r.Value}, nil
	case "select_photographer":
		return SelectPhotographer{Name: r.Value}, nil
	case "select_category":
		return SelectCategory{Name: r.Value}, nil
	case "clear_photographer":
		return ClearPhotographer{}, nil
	case "clear_category":
		return ClearCategory{}, nil
	case "set_query":
		return SetQuery{Query: r.Value}, nil
	case "reset_filters":
		return ResetFilters{}, nil
	case "select_session":
		return SelectSession{Name: r.Value}, nil
	case "back":
		return Back{}, nil
	case "open_lightbox":
		return OpenLightbox{Index: r.Index}, nil
	case "next_photo":
		return NextPhoto{}, nil
	case "prev_photo":
		return PrevPhoto{}, nil
	case "close_lightbox":
		return CloseLightbox{}, nil
	case "key":
		return KeyPress{Key: r.Value}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, r.Type)
	}
}

// Effect is work the reducer asks its caller to perform
type Effect interface {
	effect()
}

// Scroll moves the viewport to a section anchor; an empty anchor is the top
type Scroll struct{ Anchor string }

// Defer dispatches Action once Delay has passed
type Defer struct {
	Delay  time.Duration
	Action Action
}

func (Scroll) effect() {}
func (Defer) effect()  {}
