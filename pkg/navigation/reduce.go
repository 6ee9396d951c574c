package navigation

import (
	"errors"
	"fmt"

	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/portfolio"
	"binx-portfolio/pkg/registry"
)

var (
	// ErrInvalidTransition is returned for an action the current mode does not accept
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrUnknownSession is returned when selecting a session that is not visible
	ErrUnknownSession = errors.New("unknown session")
	// ErrPhotoOutOfRange is returned when opening a photo the session does not have
	ErrPhotoOutOfRange = errors.New("photo index out of range")
)

// Reduce applies a to s. On error s is returned unchanged.
func Reduce(photos []models.PhotoRecord, s State, a Action) (State, []Effect, error) {
	next := s
	if _, entering := a.(EnterGallery); !entering {
		next.Exiting = false
	}
	mode := s.Mode()

	invalid := func() (State, []Effect, error) {
		return s, nil, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, a.Kind(), mode)
	}

	switch a := a.(type) {
	case EnterGallery:
		if mode != ModeHome {
			return invalid()
		}
		next.Exiting = true
		return next, []Effect{Defer{Delay: EnterGalleryDelay, Action: ShowPortfolio{}}}, nil

	case ShowPortfolio:
		if mode == ModeHome {
			next = next.resetPortfolio()
			next.View = ViewPortfolio
		}
		return next, []Effect{Scroll{}}, nil

	case Navigate:
		if mode == ModeHome {
			return next, []Effect{Scroll{Anchor: a.Section}}, nil
		}
		next = next.resetPortfolio()
		next.View = ViewHome
		if a.Section == "" {
			return next, []Effect{Scroll{}}, nil
		}
		return next, []Effect{Defer{Delay: SectionScrollDelay, Action: Navigate{Section: a.Section}}}, nil

	case SelectPhotographer:
		if mode != ModeIndex {
			return invalid()
		}
		next.Filter.Photographer = portfolio.Toggle(next.Filter.Photographer, a.Name)
		return next, nil, nil

	case SelectCategory:
		if mode != ModeIndex {
			return invalid()
		}
		next.Filter.Category = portfolio.Toggle(next.Filter.Category, a.Name)
		return next, nil, nil

	case ClearPhotographer:
		if mode != ModeIndex {
			return invalid()
		}
		next.Filter.Photographer = registry.All
		return next, nil, nil

	case ClearCategory:
		if mode != ModeIndex {
			return invalid()
		}
		next.Filter.Category = registry.All
		return next, nil, nil

	case SetQuery:
		if mode != ModeIndex {
			return invalid()
		}
		next.Filter.Query = a.Query
		return next, nil, nil

	case ResetFilters:
		if mode != ModeIndex {
			return invalid()
		}
		next.Filter = portfolio.DefaultFilter()
		return next, nil, nil

	case SelectSession:
		if mode != ModeIndex {
			return invalid()
		}
		if _, ok := next.Groups(photos).Get(a.Name); !ok {
			return s, nil, fmt.Errorf("%w: %q", ErrUnknownSession, a.Name)
		}
		next.Session = a.Name
		next.closeLightbox()
		return next, []Effect{Scroll{}}, nil

	case Back:
		switch mode {
		case ModeSession, ModeLightbox:
			next.Session = ""
			next.closeLightbox()
			return next, []Effect{Scroll{}}, nil
		case ModeIndex:
			next = next.resetPortfolio()
			next.View = ViewHome
			return next, []Effect{Scroll{}}, nil
		default:
			return s, nil, nil
		}

	case OpenLightbox:
		if mode != ModeSession && mode != ModeLightbox {
			return invalid()
		}
		count := len(next.SessionPhotos(photos))
		if a.Index < 0 || a.Index >= count {
			return s, nil, fmt.Errorf("%w: %d of %d", ErrPhotoOutOfRange, a.Index, count)
		}
		next.LightboxOpen = true
		next.Lightbox = a.Index
		return next, nil, nil

	case NextPhoto:
		if mode != ModeLightbox {
			return invalid()
		}
		return step(photos, next, 1), nil, nil

	case PrevPhoto:
		if mode != ModeLightbox {
			return invalid()
		}
		return step(photos, next, -1), nil, nil

	case CloseLightbox:
		if mode != ModeLightbox {
			return invalid()
		}
		next.closeLightbox()
		return next, nil, nil

	case KeyPress:
		if mode != ModeLightbox {
			return s, nil, nil
		}
		switch a.Key {
		case KeyEscape:
			return Reduce(photos, next, CloseLightbox{})
		case KeyArrowRight:
			return Reduce(photos, next, NextPhoto{})
		case KeyArrowLeft:
			return Reduce(photos, next, PrevPhoto{})
		default:
			return s, nil, nil
		}

	default:
		return s, nil, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}

// step moves the lightbox by delta, wrapping around the session in both directions
func step(photos []models.PhotoRecord, s State, delta int) State {
	count := len(s.SessionPhotos(photos))
	if count == 0 {
		s.closeLightbox()
		return s
	}
	s.Lightbox = ((s.Lightbox+delta)%count + count) % count
	return s
}

// Settle applies deferred effects immediately and returns the final state
// with the last requested scroll anchor. Callers without timers, such as the
// HTTP handlers, use it to skip the transition delays.
func Settle(photos []models.PhotoRecord, s State, effects []Effect) (State, string, error) {
	anchor := ""
	queue := effects
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		switch e := e.(type) {
		case Scroll:
			anchor = e.Anchor
		case Defer:
			next, more, err := Reduce(photos, s, e.Action)
			if err != nil {
				return s, anchor, err
			}
			s = next
			queue = append(queue, more...)
		}
	}
	return s, anchor, nil
}
