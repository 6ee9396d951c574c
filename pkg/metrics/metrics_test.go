package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRegistryLoad(t *testing.T) {
	m := New()

	m.ObserveRegistryLoad(time.Now(), 7, nil)
	m.ObserveRegistryLoad(time.Now(), 0, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegistryLoads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegistryLoads.WithLabelValues("error")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.RegistryPhotos))
}

func TestHandler_ExposesCounters(t *testing.T) {
	m := New()
	m.ObservePage("portfolio", "index")
	m.ObserveAction("next_photo", "applied")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, `binx_page_renders_total{mode="index",view="portfolio"} 1`))
	assert.True(t, strings.Contains(text, `binx_navigation_actions_total{action="next_photo",outcome="applied"} 1`))
}
