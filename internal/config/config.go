// Package config carga la configuración del servicio.
//
// Precedencia (menor -> mayor): defaults (New), archivo YAML si DOGS_CONFIG
// está seteado, variables de entorno con prefijo DOGS_.
package config

import (
	"time"
)

// Drivers de Store soportados.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config contiene la configuración del proceso.
type Config struct {
	// Addr es la dirección de escucha HTTP, p.ej. ":8080".
	Addr string `koanf:"addr"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	AppName   string `koanf:"app_name"`

	// StoreDriver: memory | postgres | sqlite.
	StoreDriver string `koanf:"store_driver"`
	PostgresDSN string `koanf:"postgres_dsn"`
	SQLitePath  string `koanf:"sqlite_path"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	MetricsEnabled bool `koanf:"metrics_enabled"`
	SwaggerEnabled bool `koanf:"swagger_enabled"`
}

// New devuelve la configuración por defecto.
func New() *Config {
	return &Config{
		Addr:            ":8080",
		LogLevel:        "info",
		LogFormat:       "text",
		AppName:         "dogs-api",
		StoreDriver:     StoreMemory,
		SQLitePath:      "data/dogs.db",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MetricsEnabled:  true,
		SwaggerEnabled:  true,
	}
}
