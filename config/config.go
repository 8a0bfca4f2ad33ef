package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"trackstats/core"
	"trackstats/stats"
)

type EngineConfig struct {
	AltitudeSmoothingFactor int     `yaml:"altitude_smoothing_factor"`
	MaxAcceleration         float64 `yaml:"max_acceleration"`
}

type StoreSection struct {
	Path         string `yaml:"path"`
	CacheEnabled bool   `yaml:"cache_enabled"`
}

// Config is the application-level configuration, passed explicitly to
// whoever needs it. There is no global preference state.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Store  StoreSection `yaml:"store"`
}

func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			AltitudeSmoothingFactor: stats.DefaultAltitudeSmoothingFactor,
			MaxAcceleration:         stats.DefaultMaxAcceleration,
		},
		Store: StoreSection{
			Path:         "trackstats-data",
			CacheEnabled: true,
		},
	}
}

// Load reads a YAML config file; fields absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Engine.AltitudeSmoothingFactor <= 0 {
		return nil, fmt.Errorf("altitude_smoothing_factor must be positive, got %d",
			cfg.Engine.AltitudeSmoothingFactor)
	}
	if cfg.Engine.MaxAcceleration <= 0 {
		return nil, fmt.Errorf("max_acceleration must be positive, got %g",
			cfg.Engine.MaxAcceleration)
	}
	return cfg, nil
}

func (cfg *Config) EngineConfig() stats.Config {
	return stats.Config{
		AltitudeSmoothingFactor: cfg.Engine.AltitudeSmoothingFactor,
		MaxAcceleration:         cfg.Engine.MaxAcceleration,
	}
}

func (cfg *Config) StoreConfig() *core.StoreConfig {
	return &core.StoreConfig{
		CacheEnabled: cfg.Store.CacheEnabled,
		Engine:       cfg.EngineConfig(),
	}
}
