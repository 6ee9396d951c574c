package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"binx-portfolio/pkg/config"
	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/navigation"
	"binx-portfolio/pkg/portfolio"
	"binx-portfolio/pkg/registry"
	"binx-portfolio/pkg/services"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{
		"serve", "list-categories", "list-photographers", "list-sessions",
		"show-session", "export", "scan-gallery", "create-cname", "browse",
	} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("bucket"))
	assert.NotNil(t, root.PersistentFlags().Lookup("gallery-dir"))
}

// initTestService initializes the shared service with the sample photos only
func initTestService(t *testing.T) {
	t.Helper()
	services.InitService(&config.Config{
		Port:           "8080",
		URLPrefix:      "/gallery/",
		IncludeSamples: true,
		CacheTTL:       time.Minute,
	}, services.WithSources())
}

func TestListFacet(t *testing.T) {
	initTestService(t)

	var out bytes.Buffer
	require.NoError(t, listFacet(&out, "Photo Categories", "categories", services.GetCategories, func(p models.PhotoRecord) string {
		return p.Category
	}))

	text := out.String()
	assert.Contains(t, text, "Automotive\n  Photos: 2\n")
	assert.Contains(t, text, "Total: 5 categories\n")
	assert.NotContains(t, text, registry.All+"\n")

	out.Reset()
	require.NoError(t, listFacet(&out, "Photographers", "photographers", services.GetPhotographers, func(p models.PhotoRecord) string {
		return p.Photographer
	}))
	assert.Contains(t, out.String(), "Amy\n  Photos: 2\n")

	failing := func() ([]string, error) { return nil, errors.New("boom") }
	assert.Error(t, listFacet(&out, "Photographers", "photographers", failing, func(p models.PhotoRecord) string {
		return p.Photographer
	}))
}

func TestListSessions_Filtered(t *testing.T) {
	initTestService(t)

	var out bytes.Buffer
	require.NoError(t, listSessions(&out, portfolio.Filter{Photographer: "Amy"}))

	text := out.String()
	assert.Contains(t, text, "Session: Muscle Cars\n")
	assert.NotContains(t, text, "Bank Heist")
	assert.Contains(t, text, "Total: 2 photos across 1 sessions\n")

	out.Reset()
	require.NoError(t, listSessions(&out, portfolio.Filter{Query: "nothing matches"}))
	assert.Contains(t, out.String(), "No sessions match the filters.")
}

func TestShowSession(t *testing.T) {
	initTestService(t)

	var out bytes.Buffer
	require.NoError(t, showSession(&out, "Muscle Cars"))
	assert.Contains(t, out.String(), "1. Mustang Red\n")
	assert.Contains(t, out.String(), "2. Chrome Detail\n")

	assert.ErrorIs(t, showSession(&out, "Nope"), services.ErrSessionNotFound)
}

func TestExportData(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, exportData(&out, registry.Samples(), "yaml"))

	var photos []models.PhotoRecord
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &photos))
	assert.Len(t, photos, 6)

	out.Reset()
	require.NoError(t, exportData(&out, registry.Samples(), "json"))
	assert.True(t, strings.HasPrefix(out.String(), "[\n"))

	assert.Error(t, exportData(&out, nil, "csv"))
	assert.False(t, supportedFormat("csv"))
}

func TestScanGallery_WritesManifest(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "gallery")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range []string{"Amy_Cars_Night-Run_Glow.jpg", "readme.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	manifest := filepath.Join(root, "gallery.yaml")

	var out bytes.Buffer
	n, err := scanGallery(context.Background(), &out, dirSource(dir), manifest)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, out.String(), FilenameFormat)

	m, err := registry.LoadManifest(manifest)
	require.NoError(t, err)
	assert.Equal(t, []models.GalleryFile{{Name: "Amy_Cars_Night-Run_Glow.jpg"}}, m.Files)
}

func TestScanGallery_EmptyLeavesManifest(t *testing.T) {
	root := t.TempDir()
	manifest := filepath.Join(root, "gallery.yaml")

	var out bytes.Buffer
	n, err := scanGallery(context.Background(), &out, dirSource(filepath.Join(root, "gallery")), manifest)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoFileExists(t, manifest)
}

func TestScanSource(t *testing.T) {
	cfg := &config.Config{GalleryDir: "./public/gallery"}

	src, err := scanSource(cfg, false)
	require.NoError(t, err)
	assert.Equal(t, "dir:./public/gallery", src.Name())

	_, err = scanSource(cfg, true)
	assert.ErrorIs(t, err, config.ErrBucketNameNotSet)

	cfg.BucketName = "binx"
	src, err = scanSource(cfg, true)
	require.NoError(t, err)
	assert.Equal(t, "bucket:binx", src.Name())
}

func TestParseCommand(t *testing.T) {
	a, err := parseCommand("open", "2")
	require.NoError(t, err)
	assert.Equal(t, navigation.OpenLightbox{Index: 1}, a)

	a, err = parseCommand("Category", "Automotive")
	require.NoError(t, err)
	assert.Equal(t, navigation.SelectCategory{Name: "Automotive"}, a)

	_, err = parseCommand("open", "0")
	assert.ErrorIs(t, err, errInvalidNumber)
	_, err = parseCommand("session", "")
	assert.ErrorIs(t, err, errMissingArg)
	_, err = parseCommand("fly", "")
	assert.ErrorIs(t, err, errUnknownInput)
}

// manualTimer never fires on its own
type manualTimer struct{}

func (manualTimer) Stop() bool { return true }

func TestRunBrowser_Session(t *testing.T) {
	script := strings.Join([]string{
		"key ArrowRight",
		"portfolio",
		"category Automotive",
		"session Muscle Cars",
		"open 1",
		"key ArrowLeft",
		"next",
		"key Escape",
		"next",
		"back",
		"back",
		"quit",
		"portfolio",
	}, "\n")

	var out bytes.Buffer
	after := func(time.Duration, func()) navigation.Timer { return manualTimer{} }
	runBrowser(strings.NewReader(script), &out, registry.Samples(), navigation.WithAfterFunc(after))

	text := out.String()
	assert.Contains(t, text, "[HOME] 5 featured photos.")
	assert.Contains(t, text, "(key ArrowRight ignored)")
	assert.Contains(t, text, "[INDEX] photographer=All category=Automotive")
	assert.Contains(t, text, "  Muscle Cars (2 photos) Automotive // Amy\n")
	assert.Contains(t, text, "[SESSION] Muscle Cars (2 photos)\n")
	assert.Contains(t, text, "[LIGHTBOX] 1 / 2 Mustang Red // Amy\n")
	assert.Contains(t, text, "[LIGHTBOX] 2 / 2 Chrome Detail // Amy\n")
	assert.Contains(t, text, "Error: invalid transition")
	// The final "portfolio" after quit is never read.
	assert.Equal(t, 1, strings.Count(text, "[INDEX] photographer=All category=All"))
}
