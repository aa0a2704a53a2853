package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// applyEnvOverrides overrides config values with environment variables if set.
// Invalid values fail fast.
func applyEnvOverrides(cfg *Config) error {
	if mode := os.Getenv("APP_MODE"); mode != "" {
		cfg.App.Mode = Mode(mode)
	}
	if port := os.Getenv("APP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid APP_PORT %q: %w", port, err)
		}
		cfg.App.Port = p
	}
	if timeout := os.Getenv("APP_SHUTDOWN_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid APP_SHUTDOWN_TIMEOUT %q: %w", timeout, err)
		}
		cfg.App.ShutdownTimeout = d
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if dev := os.Getenv("LOG_DEVELOPMENT"); dev != "" {
		b, err := strconv.ParseBool(dev)
		if err != nil {
			return fmt.Errorf("invalid LOG_DEVELOPMENT %q: %w", dev, err)
		}
		cfg.Log.Development = b
	}
	if file := os.Getenv("LOG_FILE"); file != "" {
		cfg.Log.File = file
	}

	if locale := os.Getenv("CURRENCY_LOCALE"); locale != "" {
		cfg.Currency.Locale = locale
	}
	if symbol := os.Getenv("CURRENCY_SYMBOL"); symbol != "" {
		cfg.Currency.Symbol = symbol
	}
	return nil
}
