package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribe/internal/docbuild"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Render.StatusGlyphs)
	assert.Equal(t, docbuild.NextStepsTitle, cfg.Render.OverrideSection)
	assert.Empty(t, cfg.Sections)
	assert.False(t, cfg.Logging.Debug)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".scribe.yaml")
	data := []byte(`
render:
  status_glyphs: false
  width: 100
sections:
  - title: Parking Lot
    icon: "🅿"
logging:
  debug: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Render.StatusGlyphs)
	assert.Equal(t, 100, cfg.Render.Width)
	assert.Equal(t, docbuild.NextStepsTitle, cfg.Render.OverrideSection)
	assert.True(t, cfg.Logging.Debug)
	require.Len(t, cfg.Sections, 1)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".scribe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render: ["), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestNewBuilder_RegistersConfiguredSections(t *testing.T) {
	cfg := Default()
	cfg.Sections = []SectionConfig{{Title: "Parking Lot", Icon: "🅿"}, {Title: ""}}

	blocks := cfg.NewBuilder().Build("Title\n\nParking Lot\nRevisit pricing", nil)
	require.Len(t, blocks, 3)
	h, ok := blocks[1].(docbuild.Heading)
	require.True(t, ok)
	assert.Equal(t, 4, h.Level)
}
