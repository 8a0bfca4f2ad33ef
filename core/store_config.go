package core

import "trackstats/stats"

type StoreConfig struct {
	CacheEnabled bool
	Engine       stats.Config
}

func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		CacheEnabled: true,
		Engine:       stats.DefaultConfig(),
	}
}
