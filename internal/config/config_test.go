package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calcpath/internal/config"
)

// isolate moves into an empty directory with an empty $HOME so no stray
// .calcpath.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, config.DefaultWorkers, cfg.Search.Workers)
	assert.False(t, cfg.Search.StoreConsumesMove)
	assert.Empty(t, cfg.Levels.Dir)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
search:
  workers: 3
  store_consumes_move: true
levels:
  dir: ./levels
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Search.Workers)
	assert.True(t, cfg.Search.StoreConsumesMove)
	assert.Equal(t, "./levels", cfg.Levels.Dir)
}

func TestLoad_DiscoveredFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".calcpath.yaml"),
		[]byte("search:\n  workers: 2\n"), 0o600))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Search.Workers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  workers: 3\n"), 0o600))
	t.Setenv("CALCPATH_SEARCH_WORKERS", "5")
	t.Setenv("CALCPATH_METRICS_TEXTFILE", "/tmp/calcpath.prom")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Search.Workers)
	assert.Equal(t, "/tmp/calcpath.prom", cfg.Metrics.Textfile)
}

func TestLoad_Invalid(t *testing.T) {
	dir := isolate(t)

	tests := map[string]string{
		"level":   "log:\n  level: loud\n",
		"format":  "log:\n  format: xml\n",
		"workers": "search:\n  workers: 0\n",
	}
	for name, body := range tests {
		path := filepath.Join(dir, name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		_, err := config.Load(path)
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}

	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")
}
