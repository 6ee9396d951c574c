package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCNAME(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	path, err := WriteCNAME(dir, " binx.productions\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "CNAME"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "binx.productions", string(data))
}

func TestWriteCNAME_NoDomain(t *testing.T) {
	_, err := WriteCNAME(t.TempDir(), "  ")
	assert.ErrorIs(t, err, ErrDomainNotSet)
}

func TestNavLinksTargetSections(t *testing.T) {
	for _, link := range NavLinks() {
		if link.Portfolio {
			assert.Empty(t, link.Section)
			continue
		}
		assert.True(t, IsSection(link.Section), link.Label)
	}
	assert.False(t, IsSection("portfolio"))
}
