package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	Env            string        `env:"APP_ENV" envDefault:"production"`
	GalleryDir     string        `env:"GALLERY_DIR" envDefault:"./public/gallery"`
	ManifestPath   string        `env:"GALLERY_MANIFEST" envDefault:"./gallery.yaml"`
	URLPrefix      string        `env:"GALLERY_URL_PREFIX" envDefault:"/gallery/"`
	BucketName     string        `env:"BUCKET_NAME"`
	BucketPrefix   string        `env:"BUCKET_PREFIX"`
	SignedURLs     bool          `env:"BUCKET_SIGNED_URLS" envDefault:"false"`
	IncludeSamples bool          `env:"INCLUDE_SAMPLES" envDefault:"true"`
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	ViewsDir       string        `env:"VIEWS_DIR" envDefault:"./views"`
	PublicDir      string        `env:"PUBLIC_DIR" envDefault:"./public"`
	Domain         string        `env:"DOMAIN" envDefault:"binx.productions"`
	CNAMEDir       string        `env:"CNAME_DIR" envDefault:"./docs"`
}

// ErrInvalidPort is returned when PORT is not a TCP port number
var ErrInvalidPort = errors.New("PORT must be a number between 1 and 65535")

// ErrBucketNameNotSet is returned when BUCKET_PREFIX is set without BUCKET_NAME
var ErrBucketNameNotSet = errors.New("BUCKET_NAME environment variable not set")

// ErrInvalidCacheTTL is returned when CACHE_TTL is not positive
var ErrInvalidCacheTTL = errors.New("CACHE_TTL must be positive")

// Load loads configuration from .env files and environment variables
func Load() (*Config, error) {
	LoadDotEnv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return ErrInvalidPort
	}
	if c.BucketPrefix != "" && c.BucketName == "" {
		return ErrBucketNameNotSet
	}
	if c.CacheTTL <= 0 {
		return ErrInvalidCacheTTL
	}
	return nil
}

// UseBucket reports whether gallery files are also read from Cloud Storage
func (c *Config) UseBucket() bool {
	return c.BucketName != ""
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Home URL: http://localhost:%s/\n", c.Port)
	fmt.Printf("Portfolio URL: http://localhost:%s/portfolio\n", c.Port)
}
