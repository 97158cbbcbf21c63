package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".jsxtrace")
	assert.NoError(t, os.MkdirAll(dir, 0o755))
	content := `format: json
inspect:
  skipTests: true
keys:
  obfuscate: true
runner:
  workers: 2
`
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load(root)
	assert.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Inspect.SkipTests)
	assert.True(t, cfg.Keys.Obfuscate)
	assert.Equal(t, 2, cfg.Runner.Workers)
	// untouched keys keep defaults
	assert.True(t, cfg.Inspect.Recursive)
	assert.Equal(t, 512, cfg.Runner.CacheSize)
}

func TestLoad_InvalidFormatRejected(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".jsxtrace")
	assert.NoError(t, os.MkdirAll(dir, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("format: xml\n"), 0o644))

	_, err := Load(root)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Runner.Workers = 3
	assert.NoError(t, cfg.Save(root))

	loaded, err := Load(root)
	assert.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Runner.Workers = -1
	assert.Error(t, cfg.Validate())
}
