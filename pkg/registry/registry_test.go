package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binx-portfolio/pkg/models"
)

func TestAssemble_LocalFirst(t *testing.T) {
	local := ParseFiles([]models.GalleryFile{{Name: "Damon_Cars_Drift_One.png"}}, "")
	reg, err := Assemble(local, Samples())
	require.NoError(t, err)

	all := reg.All()
	require.Len(t, all, 7)
	assert.Equal(t, "local-0", all[0].ID)
	assert.Equal(t, "sample-1", all[1].ID)
	assert.Equal(t, "sample-6", all[6].ID)
}

func TestAssemble_DuplicateID(t *testing.T) {
	_, err := Assemble(Samples(), Samples())
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	reg, err := Assemble(nil, Samples())
	require.NoError(t, err)

	all := reg.All()
	all[0].Title = "changed"
	assert.Equal(t, "Mustang Red", reg.All()[0].Title)
}

func TestRegistry_Unique(t *testing.T) {
	local := ParseFiles([]models.GalleryFile{
		{Name: "Damon_Cars_Drift_One.png"},
		{Name: "Callum_Portraits_Streets_Two.png"},
	}, "")
	reg, err := Assemble(local, Samples())
	require.NoError(t, err)

	assert.Equal(t, []string{"All", "Damon", "Callum", "Amy", "Marianna", "Binx"}, reg.Photographers())
	assert.Equal(t, []string{"All", "Cars", "Portraits", "Automotive", "Tactical", "Lifestyle", "Events"}, reg.Categories())
}

func TestRegistry_FeaturedAndByID(t *testing.T) {
	reg, err := Assemble(nil, Samples())
	require.NoError(t, err)

	featured := reg.Featured()
	assert.Len(t, featured, 5)
	for _, p := range featured {
		assert.NotEqual(t, "sample-2", p.ID)
	}

	p, ok := reg.ByID("sample-3")
	require.True(t, ok)
	assert.Equal(t, "Breach", p.Title)

	_, ok = reg.ByID("missing")
	assert.False(t, ok)
}

func TestPlaceholder_DataURI(t *testing.T) {
	uri := Placeholder("Mustang Red", "#7f1d1d", "#ef4444")
	assert.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))
}

func TestScanDir_ImagesOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gallery")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"b_x_y_z.JPG", "a_x_y_z.png", "notes.txt", "c.webp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := ScanDir(dir)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"a_x_y_z.png", "b_x_y_z.JPG", "c.webp"}, names)
}

func TestScanDir_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "gallery")

	files, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.DirExists(t, dir)
}

func TestManifest_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	want := Manifest{Files: []models.GalleryFile{{Name: "A_B_C_D.jpg"}, {Name: "E.png"}}}

	require.NoError(t, SaveManifest(path, want))
	got, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadManifest_Missing(t *testing.T) {
	m, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, m.Files)
}

func TestLoadManifest_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files: [unterminated"), 0o644))

	_, err := LoadManifest(path)
	assert.Error(t, err)
}

func TestLocalSource_ManifestWins(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "gallery")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "on-disk.png"), []byte("x"), 0o644))

	manifest := filepath.Join(root, "gallery.yaml")
	require.NoError(t, SaveManifest(manifest, Manifest{Files: []models.GalleryFile{{Name: "listed.png"}}}))

	files, err := LocalSource{ManifestPath: manifest, Dir: dir}.Files(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.GalleryFile{{Name: "listed.png"}}, files)

	files, err = LocalSource{ManifestPath: filepath.Join(root, "missing.yaml"), Dir: dir}.Files(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.GalleryFile{{Name: "on-disk.png"}}, files)
}

type staticSource struct {
	name  string
	files []models.GalleryFile
	err   error
}

func (s staticSource) Name() string { return s.name }

func (s staticSource) Files(context.Context) ([]models.GalleryFile, error) {
	return s.files, s.err
}

func TestLoadFiles_MergesInSourceOrder(t *testing.T) {
	first := staticSource{name: "first", files: []models.GalleryFile{{Name: "a.png"}, {Name: "b.png"}}}
	second := staticSource{name: "second", files: []models.GalleryFile{{Name: "b.png", URL: "https://x/b.png"}, {Name: "c.png"}}}

	files, err := LoadFiles(context.Background(), first, second)
	require.NoError(t, err)
	assert.Equal(t, []models.GalleryFile{{Name: "a.png"}, {Name: "b.png"}, {Name: "c.png"}}, files)
}

func TestLoadFiles_SourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := LoadFiles(context.Background(), staticSource{name: "bad", err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestPublicObjectURL(t *testing.T) {
	assert.Equal(t,
		"https://storage.googleapis.com/binx/gallery/Side%20Stance.png",
		PublicObjectURL("binx", "gallery/Side Stance.png"))
}

func TestNaturalLess(t *testing.T) {
	assert.True(t, naturalLess("shot2.jpg", "shot10.jpg"))
	assert.False(t, naturalLess("shot10.jpg", "shot2.jpg"))
	assert.True(t, naturalLess("a", "ab"))
	assert.False(t, naturalLess("same", "same"))
	assert.True(t, naturalLess("A_Cars_S_1.png", "B_Cars_S_1.png"))
}
