package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"trackstats/stats"
)

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "trackstats.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, stats.DefaultConfig(), cfg.EngineConfig())
	assert.True(t, cfg.Store.CacheEnabled)
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
engine:
  altitude_smoothing_factor: 10
  max_acceleration: 0.05
store:
  path: /tmp/tracks
  cache_enabled: false
`)

	cfg, err := Load(path)
	assert.Nil(t, err)
	assert.Equal(t, 10, cfg.Engine.AltitudeSmoothingFactor)
	assert.Equal(t, 0.05, cfg.Engine.MaxAcceleration)
	assert.Equal(t, "/tmp/tracks", cfg.Store.Path)
	assert.False(t, cfg.Store.CacheEnabled)

	storeConfig := cfg.StoreConfig()
	assert.False(t, storeConfig.CacheEnabled)
	assert.Equal(t, 10, storeConfig.Engine.AltitudeSmoothingFactor)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
engine:
  max_acceleration: 0.01
`)

	cfg, err := Load(path)
	assert.Nil(t, err)
	assert.Equal(t, 0.01, cfg.Engine.MaxAcceleration)
	assert.Equal(t, stats.DefaultAltitudeSmoothingFactor, cfg.Engine.AltitudeSmoothingFactor)
	assert.True(t, cfg.Store.CacheEnabled)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfigFile(t, `
engine:
  altitude_smoothing_factor: -1
`)
	_, err := Load(path)
	assert.NotNil(t, err)

	path = writeConfigFile(t, `
engine:
  max_acceleration: 0
`)
	_, err = Load(path)
	assert.NotNil(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NotNil(t, err)
}

func TestLoadInvalidYaml(t *testing.T) {
	path := writeConfigFile(t, "engine: [")
	_, err := Load(path)
	assert.NotNil(t, err)
}
