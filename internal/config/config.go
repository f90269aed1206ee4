package config

import (
	"github.com/coastalops/launchtours/internal/logger"
	"github.com/coastalops/launchtours/internal/repository"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// ListViewConfig tunes the shared list-view controllers.
type ListViewConfig struct {
	// CacheTTLSeconds bounds how long a cached page may serve between
	// explicit invalidations. 0 disables the time bound.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

type Config struct {
	Server   ServerConfig              `mapstructure:"server"`
	Logger   logger.LoggerConfig       `mapstructure:"logger"`
	Postgres repository.PostgresConfig `mapstructure:"postgres"`
	ListView ListViewConfig            `mapstructure:"listview"`
}
