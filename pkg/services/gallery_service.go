package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"binx-portfolio/pkg/config"
	"binx-portfolio/pkg/logger"
	"binx-portfolio/pkg/metrics"
	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/portfolio"
	"binx-portfolio/pkg/registry"
)

const registryKey = "registry"

// ErrSessionNotFound is returned when no visible session has the given name
var ErrSessionNotFound = errors.New("session not found")

// Service assembles the photo registry from the configured gallery sources
// and answers portfolio queries against it.
type Service struct {
	config       *config.Config
	sources      []registry.Source
	photoCache   *cache.Cache
	metrics      *metrics.Metrics
	mu           sync.Mutex
	loadTimeout  time.Duration
	samplePhotos func() []models.PhotoRecord
}

// Option configures a Service
type Option func(*Service)

// WithSources replaces the sources derived from the configuration
func WithSources(sources ...registry.Source) Option {
	return func(s *Service) {
		s.sources = sources
	}
}

// WithMetrics records registry loads
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates a service for cfg
func NewService(cfg *config.Config, opts ...Option) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	s := &Service{
		config:       cfg,
		sources:      SourcesFor(cfg),
		photoCache:   cache.New(ttl, 2*ttl),
		loadTimeout:  30 * time.Second,
		samplePhotos: registry.Samples,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SourcesFor returns the gallery sources enabled by cfg
func SourcesFor(cfg *config.Config) []registry.Source {
	sources := []registry.Source{
		registry.LocalSource{ManifestPath: cfg.ManifestPath, Dir: cfg.GalleryDir},
	}
	if cfg.UseBucket() {
		sources = append(sources, registry.BucketSource{
			BucketName: cfg.BucketName,
			Prefix:     cfg.BucketPrefix,
			Signed:     cfg.SignedURLs,
		})
	}
	return sources
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// InitService initializes the shared service with the given configuration
func InitService(cfg *config.Config, opts ...Option) *Service {
	once.Do(func() {
		defaultService = NewService(cfg, opts...)
	})
	return defaultService
}

// Registry returns the cached registry, assembling it on a miss
func (s *Service) Registry(ctx context.Context) (*registry.Registry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, found := s.photoCache.Get(registryKey); found {
		logger.GetLogger().Debug().Msg("using cached registry")
		return cached.(*registry.Registry), nil
	}

	start := time.Now()
	reg, err := s.load(ctx)
	if s.metrics != nil {
		n := 0
		if reg != nil {
			n = reg.Len()
		}
		s.metrics.ObserveRegistryLoad(start, n, err)
	}
	if err != nil {
		return nil, err
	}

	s.photoCache.Set(registryKey, reg, cache.DefaultExpiration)
	return reg, nil
}

func (s *Service) load(ctx context.Context) (*registry.Registry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	log := logger.GetLogger()
	log.Info().Int("sources", len(s.sources)).Msg("loading photo registry")

	files, err := registry.LoadFiles(ctx, s.sources...)
	if err != nil {
		log.Error().Err(err).Msg("failed to read gallery sources")
		return nil, fmt.Errorf("load gallery files: %w", err)
	}

	var samples []models.PhotoRecord
	if s.config.IncludeSamples {
		samples = s.samplePhotos()
	}
	reg, err := registry.Assemble(registry.ParseFiles(files, s.config.URLPrefix), samples)
	if err != nil {
		return nil, fmt.Errorf("assemble registry: %w", err)
	}

	log.Info().Int("local", len(files)).Int("samples", len(samples)).Msg("photo registry ready")
	return reg, nil
}

// Refresh drops the cached registry so the next call reloads the sources
func (s *Service) Refresh() {
	s.photoCache.Flush()
}

// Photos returns every photo in registry order
func (s *Service) Photos(ctx context.Context) ([]models.PhotoRecord, error) {
	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	return reg.All(), nil
}

// Sessions returns the sessions visible under filter
func (s *Service) Sessions(ctx context.Context, filter portfolio.Filter) ([]models.Session, error) {
	photos, err := s.Photos(ctx)
	if err != nil {
		return nil, err
	}
	return portfolio.Browse(photos, filter).Sessions(), nil
}

// Session returns one session visible under filter
func (s *Service) Session(ctx context.Context, name string, filter portfolio.Filter) (models.Session, error) {
	photos, err := s.Photos(ctx)
	if err != nil {
		return models.Session{}, err
	}
	session, ok := portfolio.Browse(photos, filter).Get(name)
	if !ok {
		return models.Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, name)
	}
	return models.Session{Name: name, Photos: session}, nil
}

// Photographers returns All and every photographer
func (s *Service) Photographers(ctx context.Context) ([]string, error) {
	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	return reg.Photographers(), nil
}

// Categories returns All and every category
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	return reg.Categories(), nil
}

// GetPhotos returns all photos from the shared service
func GetPhotos() ([]models.PhotoRecord, error) {
	return defaultService.Photos(context.Background())
}

// GetSessions returns the sessions visible under filter from the shared service
func GetSessions(filter portfolio.Filter) ([]models.Session, error) {
	return defaultService.Sessions(context.Background(), filter)
}

// GetSession returns a session by name from the shared service
func GetSession(name string) (models.Session, error) {
	return defaultService.Session(context.Background(), name, portfolio.DefaultFilter())
}

// GetPhotographers returns the photographers from the shared service
func GetPhotographers() ([]string, error) {
	return defaultService.Photographers(context.Background())
}

// GetCategories returns the categories from the shared service
func GetCategories() ([]string, error) {
	return defaultService.Categories(context.Background())
}
