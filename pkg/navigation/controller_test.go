package navigation

import (
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// fire runs every timer that was not stopped
func (c *fakeClock) fire() {
	c.mu.Lock()
	timers := c.timers
	c.timers = nil
	c.mu.Unlock()
	for _, t := range timers {
		if !t.stopped {
			t.fn()
		}
	}
}

// fireStale runs every timer, stopped or not, like a timer that raced its Stop
func (c *fakeClock) fireStale() {
	c.mu.Lock()
	timers := c.timers
	c.timers = nil
	c.mu.Unlock()
	for _, t := range timers {
		t.fn()
	}
}

func (c *fakeClock) delays() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []time.Duration
	for _, t := range c.timers {
		out = append(out, t.delay)
	}
	return out
}

type recordingViewport struct {
	mu      sync.Mutex
	anchors []string
}

func (v *recordingViewport) ScrollTo(anchor string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.anchors = append(v.anchors, anchor)
}

type countingRecorder struct {
	outcomes map[string]int
}

func (r *countingRecorder) ObserveAction(action, outcome string) {
	if r.outcomes == nil {
		r.outcomes = make(map[string]int)
	}
	r.outcomes[action+"/"+outcome]++
}

func newTestController(t *testing.T) (*Controller, *fakeClock, *recordingViewport) {
	t.Helper()
	clock := &fakeClock{}
	viewport := &recordingViewport{}
	c := NewController(samplePhotos(t), viewport, WithAfterFunc(clock.AfterFunc))
	t.Cleanup(c.Close)
	return c, clock, viewport
}

func TestController_EnterGalleryAfterDelay(t *testing.T) {
	c, clock, viewport := newTestController(t)

	require.NoError(t, c.Dispatch(EnterGallery{}))
	assert.Equal(t, ModeHome, c.State().Mode())
	assert.True(t, c.Pending())
	assert.Equal(t, []time.Duration{EnterGalleryDelay}, clock.delays())

	clock.fire()
	assert.Equal(t, ModeIndex, c.State().Mode())
	assert.False(t, c.Pending())
	assert.Equal(t, []string{""}, viewport.anchors)
}

func TestController_SectionScrollAfterSwitch(t *testing.T) {
	c, clock, viewport := newTestController(t)

	require.NoError(t, c.Dispatch(ShowPortfolio{}))
	require.NoError(t, c.Dispatch(Navigate{Section: "services"}))
	assert.Equal(t, ModeHome, c.State().Mode())
	assert.Equal(t, []time.Duration{SectionScrollDelay}, clock.delays())
	assert.Equal(t, []string{""}, viewport.anchors)

	clock.fire()
	assert.Equal(t, []string{"", "services"}, viewport.anchors)
}

func TestController_NavigationCancelsPendingTransition(t *testing.T) {
	c, clock, viewport := newTestController(t)

	require.NoError(t, c.Dispatch(EnterGallery{}))
	require.NoError(t, c.Dispatch(Navigate{Section: "contact"}))
	assert.False(t, c.Pending())

	clock.fireStale()
	assert.Equal(t, ModeHome, c.State().Mode())
	assert.False(t, c.State().Exiting)
	assert.Equal(t, []string{"contact"}, viewport.anchors)
}

func TestController_NoOpKeepsPendingTransition(t *testing.T) {
	clock := &fakeClock{}
	recorder := &countingRecorder{}
	c := NewController(samplePhotos(t), &recordingViewport{}, WithAfterFunc(clock.AfterFunc), WithRecorder(recorder))
	t.Cleanup(c.Close)

	require.NoError(t, c.Dispatch(EnterGallery{}))
	require.NoError(t, c.Dispatch(Back{}))
	require.NoError(t, c.Dispatch(KeyPress{Key: KeyEscape}))
	assert.True(t, c.Pending())
	assert.True(t, c.State().Exiting)
	assert.Equal(t, 1, recorder.outcomes["back/ignored"])
	assert.Equal(t, 1, recorder.outcomes["key/ignored"])

	clock.fire()
	assert.Equal(t, ModeIndex, c.State().Mode())
	assert.False(t, c.State().Exiting)
}

func TestController_RejectedActionKeepsPendingTransition(t *testing.T) {
	c, clock, _ := newTestController(t)

	require.NoError(t, c.Dispatch(EnterGallery{}))
	assert.ErrorIs(t, c.Dispatch(NextPhoto{}), ErrInvalidTransition)
	assert.True(t, c.Pending())

	clock.fire()
	assert.Equal(t, ModeIndex, c.State().Mode())
}

func TestController_CloseDropsPendingTransition(t *testing.T) {
	c, clock, _ := newTestController(t)

	require.NoError(t, c.Dispatch(EnterGallery{}))
	c.Close()
	clock.fireStale()
	assert.Equal(t, ModeHome, c.State().Mode())
}

func TestController_KeyListener(t *testing.T) {
	c, _, _ := newTestController(t)
	require.NoError(t, c.Dispatch(ShowPortfolio{}))
	require.NoError(t, c.Dispatch(SelectSession{Name: "Muscle Cars"}))

	assert.False(t, c.KeyListenerActive())
	consumed, err := c.HandleKey(KeyArrowRight)
	require.NoError(t, err)
	assert.False(t, consumed)

	require.NoError(t, c.Dispatch(OpenLightbox{Index: 0}))
	assert.True(t, c.KeyListenerActive())

	consumed, err = c.HandleKey(KeyArrowRight)
	require.NoError(t, err)
	assert.True(t, consumed)
	assert.Equal(t, 1, c.State().Lightbox)

	consumed, err = c.HandleKey("Tab")
	require.NoError(t, err)
	assert.False(t, consumed)

	consumed, err = c.HandleKey(KeyEscape)
	require.NoError(t, err)
	assert.True(t, consumed)
	assert.False(t, c.KeyListenerActive())
	assert.Equal(t, ModeSession, c.State().Mode())
}

func TestController_ObserverAndRecorder(t *testing.T) {
	var seen []Mode
	rec := &countingRecorder{}
	c := NewController(samplePhotos(t), nil,
		WithAfterFunc((&fakeClock{}).AfterFunc),
		WithObserver(func(s State) { seen = append(seen, s.Mode()) }),
		WithRecorder(rec),
	)
	defer c.Close()

	require.NoError(t, c.Dispatch(ShowPortfolio{}))
	require.NoError(t, c.Dispatch(SelectSession{Name: "Bank Heist"}))
	assert.Error(t, c.Dispatch(SelectSession{Name: "Bank Heist"}))

	assert.Equal(t, []Mode{ModeIndex, ModeSession}, seen)
	assert.Equal(t, 1, rec.outcomes["show_portfolio/applied"])
	assert.Equal(t, 1, rec.outcomes["select_session/applied"])
	assert.Equal(t, 1, rec.outcomes["select_session/rejected"])
}

func TestDeferred_ScheduleReplaces(t *testing.T) {
	clock := &fakeClock{}
	d := NewDeferred(clock.AfterFunc)

	var fired []string
	d.Schedule(time.Second, func(ticket uint64) {
		if d.Take(ticket) {
			fired = append(fired, "first")
		}
	})
	d.Schedule(time.Second, func(ticket uint64) {
		if d.Take(ticket) {
			fired = append(fired, "second")
		}
	})
	clock.fireStale()
	assert.Equal(t, []string{"second"}, fired)
	assert.False(t, d.Pending())

	d.Close()
	assert.False(t, d.Schedule(time.Second, func(uint64) {}))
}

func TestStateQuery_RoundTrip(t *testing.T) {
	photos := samplePhotos(t)
	s := reduce(t, photos, portfolioState(),
		SelectPhotographer{Name: "Amy"},
		SetQuery{Query: "red"},
		SelectSession{Name: "Muscle Cars"},
		OpenLightbox{Index: 0},
	)

	u, err := url.Parse(s.URL(""))
	require.NoError(t, err)
	assert.Equal(t, PortfolioPath, u.Path)

	back := StateFromQuery(ViewPortfolio, u.Query())
	assert.Equal(t, s, back)
	assert.NoError(t, back.Validate(photos))
}

func TestStateQuery_HomeAndDefaults(t *testing.T) {
	assert.Equal(t, "/#contact", NewState().URL("contact"))
	assert.Equal(t, "/portfolio", portfolioState().URL(""))
	assert.Equal(t, NewState(), StateFromQuery(ViewHome, url.Values{"session": {"x"}}))
}

func TestStateQuery_Validate(t *testing.T) {
	photos := samplePhotos(t)

	s := StateFromQuery(ViewPortfolio, url.Values{"session": {"Nope"}})
	assert.ErrorIs(t, s.Validate(photos), ErrUnknownSession)

	s = StateFromQuery(ViewPortfolio, url.Values{"session": {"Muscle Cars"}, "photo": {"5"}})
	assert.ErrorIs(t, s.Validate(photos), ErrPhotoOutOfRange)

	s = State{View: ViewPortfolio, Session: "Muscle Cars", LightboxOpen: true, Lightbox: -1}
	assert.ErrorIs(t, s.Validate(photos), ErrPhotoOutOfRange)

	s = StateFromQuery(ViewPortfolio, url.Values{"session": {"Muscle Cars"}, "photo": {"bad"}})
	assert.False(t, s.LightboxOpen)
	assert.NoError(t, s.Validate(photos))
}
