package navigation

import (
	"sync"

	"binx-portfolio/pkg/models"
)

// Viewport receives scroll requests
type Viewport interface {
	ScrollTo(anchor string)
}

// Recorder observes dispatched actions
type Recorder interface {
	ObserveAction(action string, outcome string)
}

// Option configures a Controller
type Option func(*Controller)

// WithAfterFunc replaces the timer used for delayed transitions
func WithAfterFunc(after AfterFunc) Option {
	return func(c *Controller) {
		c.deferred = NewDeferred(after)
	}
}

// WithObserver registers a callback invoked with every new state
func WithObserver(fn func(State)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// WithRecorder registers an action recorder
func WithRecorder(r Recorder) Option {
	return func(c *Controller) {
		c.recorder = r
	}
}

// Controller owns one visitor's state. User actions and delayed
// transitions are applied one at a time.
type Controller struct {
	mu       sync.Mutex
	photos   []models.PhotoRecord
	state    State
	viewport Viewport
	deferred *Deferred
	observer func(State)
	recorder Recorder
}

// NewController starts a controller on the home page
func NewController(photos []models.PhotoRecord, viewport Viewport, opts ...Option) *Controller {
	c := &Controller{
		photos:   photos,
		state:    NewState(),
		viewport: viewport,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.deferred == nil {
		c.deferred = NewDeferred(nil)
	}
	return c
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Photos returns the registry the controller browses
func (c *Controller) Photos() []models.PhotoRecord {
	return c.photos
}

// Dispatch applies a user action. An action that changes the state or
// emits effects cancels any delayed transition still waiting; a no-op
// leaves it running.
func (c *Controller) Dispatch(a Action) error {
	c.mu.Lock()
	next, effects, err := Reduce(c.photos, c.state, a)
	if err != nil {
		c.mu.Unlock()
		c.record(a, "rejected")
		return err
	}
	if next == c.state && len(effects) == 0 {
		c.mu.Unlock()
		c.record(a, "ignored")
		return nil
	}
	c.deferred.Cancel()
	scrolls := c.commitLocked(next, effects)
	c.mu.Unlock()

	c.record(a, "applied")
	c.publish(next, scrolls)
	return nil
}

// KeyListenerActive reports whether keyboard navigation is live
func (c *Controller) KeyListenerActive() bool {
	return c.State().Mode() == ModeLightbox
}

// HandleKey forwards a key press while the lightbox is open.
// It reports whether the key was consumed.
func (c *Controller) HandleKey(key string) (bool, error) {
	if !c.KeyListenerActive() {
		return false, nil
	}
	switch key {
	case KeyEscape, KeyArrowLeft, KeyArrowRight:
		return true, c.Dispatch(KeyPress{Key: key})
	default:
		return false, nil
	}
}

// Pending reports whether a delayed transition is waiting
func (c *Controller) Pending() bool {
	return c.deferred.Pending()
}

// Close tears the controller down; pending transitions never fire
func (c *Controller) Close() {
	c.deferred.Close()
}

func (c *Controller) commitLocked(next State, effects []Effect) []string {
	c.state = next
	var scrolls []string
	for _, e := range effects {
		switch e := e.(type) {
		case Scroll:
			scrolls = append(scrolls, e.Anchor)
		case Defer:
			action := e.Action
			c.deferred.Schedule(e.Delay, func(ticket uint64) {
				c.fire(ticket, action)
			})
		}
	}
	return scrolls
}

func (c *Controller) fire(ticket uint64, a Action) {
	c.mu.Lock()
	if !c.deferred.Take(ticket) {
		c.mu.Unlock()
		return
	}
	next, effects, err := Reduce(c.photos, c.state, a)
	if err != nil {
		c.mu.Unlock()
		c.record(a, "rejected")
		return
	}
	scrolls := c.commitLocked(next, effects)
	c.mu.Unlock()

	c.record(a, "deferred")
	c.publish(next, scrolls)
}

func (c *Controller) publish(s State, scrolls []string) {
	if c.viewport != nil {
		for _, anchor := range scrolls {
			c.viewport.ScrollTo(anchor)
		}
	}
	if c.observer != nil {
		c.observer(s)
	}
}

func (c *Controller) record(a Action, outcome string) {
	if c.recorder != nil {
		c.recorder.ObserveAction(a.Kind(), outcome)
	}
}
