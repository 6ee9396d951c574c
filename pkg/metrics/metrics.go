package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for page rendering, navigation and the registry
type Metrics struct {
	registry         *prometheus.Registry
	PageRenders      *prometheus.CounterVec
	NavigationAction *prometheus.CounterVec
	RegistryLoads    *prometheus.CounterVec
	RegistryLoadTime prometheus.Histogram
	RegistryPhotos   prometheus.Gauge
}

// New creates a Metrics instance on its own registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "binx_page_renders_total",
			Help: "Total number of rendered pages by view and mode",
		}, []string{"view", "mode"}),
		NavigationAction: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "binx_navigation_actions_total",
			Help: "Total number of navigation actions by action and outcome",
		}, []string{"action", "outcome"}),
		RegistryLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "binx_registry_loads_total",
			Help: "Total number of registry loads by result",
		}, []string{"result"}),
		RegistryLoadTime: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "binx_registry_load_duration_seconds",
			Help:    "Duration of registry loads from all gallery sources",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		RegistryPhotos: factory.NewGauge(prometheus.GaugeOpts{
			Name: "binx_registry_photos",
			Help: "Number of photos in the last loaded registry",
		}),
	}
}

// ObservePage records a rendered page
func (m *Metrics) ObservePage(view, mode string) {
	m.PageRenders.WithLabelValues(view, mode).Inc()
}

// ObserveAction records a navigation action and its outcome
func (m *Metrics) ObserveAction(action, outcome string) {
	m.NavigationAction.WithLabelValues(action, outcome).Inc()
}

// ObserveRegistryLoad records a registry load.
// Call with time.Now() at the start of the load.
func (m *Metrics) ObserveRegistryLoad(start time.Time, photos int, err error) {
	m.RegistryLoadTime.Observe(time.Since(start).Seconds())
	if err != nil {
		m.RegistryLoads.WithLabelValues("error").Inc()
		return
	}
	m.RegistryLoads.WithLabelValues("ok").Inc()
	m.RegistryPhotos.Set(float64(photos))
}

// Handler exposes the metrics for scraping
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
