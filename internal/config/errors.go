package config

import (
	"errors"
)

// Errores sentinela del paquete, para errors.Is en los callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
